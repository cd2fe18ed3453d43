package urls_test

import (
	"testing"

	"github.com/dracory/crudview/shared/urls"
)

func TestConventionalPaths(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"list", urls.List("items/"), "/items/"},
		{"list without slashes", urls.List("items"), "/items/"},
		{"create", urls.Create("/items/"), "/items/create/"},
		{"detail", urls.Detail("items/", "5"), "/items/5/"},
		{"update", urls.Update("items/", "5"), "/items/5/update/"},
		{"delete", urls.Delete("items/", "5"), "/items/5/delete/"},
		{"pk is escaped", urls.Detail("items/", "a/b"), "/items/a%2Fb/"},
		{"params are sorted", urls.List("items/", map[string]string{"page": "2", "format": "json"}), "/items/?format=json&page=2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
