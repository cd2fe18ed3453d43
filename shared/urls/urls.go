// Package urls builds concrete paths for the conventional CRUD routes, the
// reverse of the router's pattern generation.
package urls

import (
	neturl "net/url"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// List builds the list URL for a view prefix.
// Signature: List(prefix, params)
func List(prefix string, params ...map[string]string) string {
	return Build(normalize(prefix), params...)
}

// Create builds the create URL for a view prefix.
// Signature: Create(prefix, params)
func Create(prefix string, params ...map[string]string) string {
	return Build(normalize(prefix)+"create/", params...)
}

// Detail builds the detail URL for one record.
// Signature: Detail(prefix, pk, params)
func Detail(prefix, pk string, params ...map[string]string) string {
	return Build(normalize(prefix)+neturl.PathEscape(pk)+"/", params...)
}

// Update builds the update URL for one record.
// Signature: Update(prefix, pk, params)
func Update(prefix, pk string, params ...map[string]string) string {
	return Build(normalize(prefix)+neturl.PathEscape(pk)+"/update/", params...)
}

// Delete builds the delete URL for one record.
// Signature: Delete(prefix, pk, params)
func Delete(prefix, pk string, params ...map[string]string) string {
	return Build(normalize(prefix)+neturl.PathEscape(pk)+"/delete/", params...)
}

// Build appends optional query parameters to a path.
// Keys are sorted for stable output. Values are URL-escaped.
func Build(path string, params ...map[string]string) string {
	p := lo.FirstOr(params, map[string]string{})
	if len(p) == 0 {
		return path
	}
	q := neturl.Values{}
	keys := make([]string, 0, len(p))
	for k := range p {
		if k == "" { // skip empty keys
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q.Set(k, p[k])
	}
	enc := q.Encode()
	if enc == "" {
		return path
	}
	return path + "?" + enc
}

// normalize ensures the prefix starts and ends with '/'.
func normalize(prefix string) string {
	if prefix == "" || prefix[0] != '/' {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}
