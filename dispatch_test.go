package crudview

import (
	"net/http"
	"testing"
)

func TestResolveOperation(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		pk     string
		wantOp Operation
		wantOK bool
	}{
		{
			name:   "get without pk is list",
			method: http.MethodGet,
			path:   "/items/",
			wantOp: OperationList,
			wantOK: true,
		},
		{
			name:   "get with pk is detail",
			method: http.MethodGet,
			path:   "/items/5/",
			pk:     "5",
			wantOp: OperationDetail,
			wantOK: true,
		},
		{
			name:   "get create marker",
			method: http.MethodGet,
			path:   "/items/create/",
			wantOp: OperationCreate,
			wantOK: true,
		},
		{
			name:   "post create marker",
			method: http.MethodPost,
			path:   "/items/create/",
			wantOp: OperationCreate,
			wantOK: true,
		},
		{
			name:   "post update marker with pk",
			method: http.MethodPost,
			path:   "/items/5/update/",
			pk:     "5",
			wantOp: OperationUpdate,
			wantOK: true,
		},
		{
			name:   "put update marker with pk",
			method: http.MethodPut,
			path:   "/items/5/update/",
			pk:     "5",
			wantOp: OperationUpdate,
			wantOK: true,
		},
		{
			name:   "patch update marker with pk",
			method: http.MethodPatch,
			path:   "/items/5/update/",
			pk:     "5",
			wantOp: OperationUpdate,
			wantOK: true,
		},
		{
			name:   "post delete marker with pk",
			method: http.MethodPost,
			path:   "/items/5/delete/",
			pk:     "5",
			wantOp: OperationDelete,
			wantOK: true,
		},
		{
			name:   "delete method on delete marker",
			method: http.MethodDelete,
			path:   "/items/5/delete/",
			pk:     "5",
			wantOp: OperationDelete,
			wantOK: true,
		},
		{
			name:   "get delete marker is the confirmation page",
			method: http.MethodGet,
			path:   "/items/5/delete/",
			pk:     "5",
			wantOp: OperationDelete,
			wantOK: true,
		},
		{
			name:   "pk spelling update routes as detail",
			method: http.MethodGet,
			path:   "/items/update/",
			pk:     "update",
			wantOp: OperationDetail,
			wantOK: true,
		},
		{
			name:   "pk spelling delete routes as detail",
			method: http.MethodGet,
			path:   "/items/delete/",
			pk:     "delete",
			wantOp: OperationDetail,
			wantOK: true,
		},
		{
			name:   "pk equal to marker still updates when marker follows it",
			method: http.MethodPost,
			path:   "/items/update/update/",
			pk:     "update",
			wantOp: OperationUpdate,
			wantOK: true,
		},
		{
			name:   "post without marker or pk is unresolvable",
			method: http.MethodPost,
			path:   "/items/",
			wantOK: false,
		},
		{
			name:   "delete method without marker is unresolvable",
			method: http.MethodDelete,
			path:   "/items/5/",
			pk:     "5",
			wantOK: false,
		},
		{
			name:   "put on create marker is unresolvable",
			method: http.MethodPut,
			path:   "/items/create/",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := resolveOperation(tt.method, tt.path, tt.pk)
			if ok != tt.wantOK {
				t.Fatalf("resolveOperation(%s %s pk=%q) ok = %v, want %v",
					tt.method, tt.path, tt.pk, ok, tt.wantOK)
			}
			if ok && op != tt.wantOp {
				t.Errorf("resolveOperation(%s %s pk=%q) = %q, want %q",
					tt.method, tt.path, tt.pk, op, tt.wantOp)
			}
		})
	}
}
