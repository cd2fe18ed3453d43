package crudview

import (
	"net/http"
	"strings"
)

// Path markers for the mutation operations, matched against a whole trailing
// path segment. A primary key value that happens to equal a marker never
// reroutes: update/delete markers only count when the pk occupies the
// preceding segment, and create only counts when no pk is present.
const (
	markerCreate = "create"
	markerUpdate = "update"
	markerDelete = "delete"
)

// dispatchRule matches one (method, path shape) combination to an operation.
type dispatchRule struct {
	op      Operation
	marker  string // required trailing segment, "" for none
	needPK  bool
	methods []string
}

// dispatchTable resolves requests in order: marker rules first, then
// method + primary-key inference. The first matching rule wins.
var dispatchTable = []dispatchRule{
	{op: OperationCreate, marker: markerCreate, needPK: false,
		methods: []string{http.MethodGet, http.MethodPost}},
	{op: OperationUpdate, marker: markerUpdate, needPK: true,
		methods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch}},
	{op: OperationDelete, marker: markerDelete, needPK: true,
		methods: []string{http.MethodGet, http.MethodPost, http.MethodDelete}},
	{op: OperationDetail, marker: "", needPK: true,
		methods: []string{http.MethodGet}},
	{op: OperationList, marker: "", needPK: false,
		methods: []string{http.MethodGet}},
}

// resolveOperation selects the operation for a request. pk is the primary-key
// path value, empty when the matched route has none.
func resolveOperation(method, path, pk string) (Operation, bool) {
	shape := shapeOf(path, pk)
	for _, rule := range dispatchTable {
		if rule.marker != shape.marker || rule.needPK != (pk != "") {
			continue
		}
		for _, m := range rule.methods {
			if m == method {
				return rule.op, true
			}
		}
	}
	return "", false
}

type pathShape struct {
	marker string
}

// shapeOf classifies the path by its trailing marker segment, if any.
func shapeOf(path, pk string) pathShape {
	segments := splitPath(path)
	if len(segments) == 0 {
		return pathShape{}
	}
	last := segments[len(segments)-1]
	switch last {
	case markerCreate:
		// A pk-less "create" segment is the create marker. With a pk bound,
		// the segment is the pk itself.
		if pk == "" {
			return pathShape{marker: markerCreate}
		}
	case markerUpdate, markerDelete:
		// Only a marker when the pk sits directly before it; otherwise the
		// segment is a pk that merely spells "update" or "delete".
		if pk != "" && len(segments) >= 2 && segments[len(segments)-2] == pk {
			return pathShape{marker: last}
		}
	}
	return pathShape{}
}

func splitPath(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
