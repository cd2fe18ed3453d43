package crudview_test

import (
	"net/http"
	"testing"

	crudview "github.com/dracory/crudview"
)

type stubView struct {
	ops      []crudview.Operation
	basename string
}

func (s *stubView) ServeHTTP(w http.ResponseWriter, r *http.Request) {}
func (s *stubView) Allowed() []crudview.Operation                    { return s.ops }
func (s *stubView) PKParam() string                                  { return "pk" }
func (s *stubView) Basename() string                                 { return s.basename }

func allOpsStub(basename string) *stubView {
	return &stubView{ops: crudview.AllOperations, basename: basename}
}

func TestRouterGeneratesFiveConventionalRoutes(t *testing.T) {
	router := crudview.NewRouter()
	if err := router.Register("items/", allOpsStub("item"), "Item"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	routes := router.Routes()
	if len(routes) != 5 {
		t.Fatalf("got %d routes, want 5", len(routes))
	}

	want := map[string]string{
		"items/":             "item_list",
		"items/create/":      "item_create",
		"items/{pk}/":        "item_detail",
		"items/{pk}/update/": "item_update",
		"items/{pk}/delete/": "item_delete",
	}
	for _, route := range routes {
		name, ok := want[route.Pattern]
		if !ok {
			t.Errorf("unexpected pattern %q", route.Pattern)
			continue
		}
		if route.Name != name {
			t.Errorf("pattern %q has name %q, want %q", route.Pattern, route.Name, name)
		}
		delete(want, route.Pattern)
	}
	for pattern := range want {
		t.Errorf("missing pattern %q", pattern)
	}
}

func TestRouterFiltersDisabledOperations(t *testing.T) {
	router := crudview.NewRouter()
	view := &stubView{
		ops:      []crudview.Operation{crudview.OperationList, crudview.OperationDetail},
		basename: "item",
	}
	if err := router.Register("items/", view, ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	routes := router.Routes()
	if len(routes) != 2 {
		t.Fatalf("got %d routes, want 2", len(routes))
	}
	for _, route := range routes {
		if route.Operation != crudview.OperationList && route.Operation != crudview.OperationDetail {
			t.Errorf("unexpected operation %q in route table", route.Operation)
		}
	}
}

func TestRouterRejectsDuplicates(t *testing.T) {
	tests := []struct {
		name           string
		secondPrefix   string
		secondBasename string
	}{
		{name: "duplicate prefix", secondPrefix: "items/", secondBasename: "other"},
		{name: "duplicate basename", secondPrefix: "other/", secondBasename: "item"},
		{name: "prefix normalized before comparison", secondPrefix: "items", secondBasename: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := crudview.NewRouter()
			if err := router.Register("items/", allOpsStub("x"), "item"); err != nil {
				t.Fatalf("first register failed: %v", err)
			}
			err := router.Register(tt.secondPrefix, allOpsStub("y"), tt.secondBasename)
			if err == nil {
				t.Fatal("expected duplicate registration to fail")
			}
		})
	}
}

func TestRouterDerivesBasenameFromView(t *testing.T) {
	router := crudview.NewRouter()
	if err := router.Register("items/", allOpsStub("gadget"), ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	routes := router.Routes()
	if routes[0].Name != "gadget_list" {
		t.Errorf("derived name = %q, want %q", routes[0].Name, "gadget_list")
	}
}

func TestRouterIsConsumedOnce(t *testing.T) {
	router := crudview.NewRouter()
	if err := router.Register("items/", allOpsStub("item"), ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	first := router.Routes()
	second := router.Routes()
	if len(first) != len(second) {
		t.Fatalf("route table changed between calls: %d vs %d", len(first), len(second))
	}

	if err := router.Register("other/", allOpsStub("other"), ""); err == nil {
		t.Fatal("expected registration after Routes() to fail")
	}
}
