package crudview

import (
	"net/http"

	"rivaas.dev/binding"
)

// Page is one page of a paginated list, handed to the list template (or the
// JSON envelope) in place of the plain record slice when PaginateBy is set.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int64
	TotalPages int
}

func (p Page[T]) HasPrev() bool { return p.Number > 1 }
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }
func (p Page[T]) PrevNumber() int {
	if p.HasPrev() {
		return p.Number - 1
	}
	return p.Number
}
func (p Page[T]) NextNumber() int {
	if p.HasNext() {
		return p.Number + 1
	}
	return p.Number
}

type listParams struct {
	Page int `query:"page" default:"1"`
}

// handleList renders the collection, paginated when PaginateBy is set.
// The template context holds the records under VerboseNamePlural.
func (v *View[T]) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if v.cfg.PaginateBy > 0 {
		params, err := binding.Query[listParams](r.URL.Query())
		if err != nil || params.Page < 1 {
			params.Page = 1
		}
		page, err := v.paginatedQuery(r, params.Page)
		if err != nil {
			v.serverError(w, r, err)
			return
		}
		if v.wantsJSON(r) {
			writeSuccessWithData(w, r, "", map[string]any{
				v.cfg.VerboseNamePlural: page.Items,
				"page":                  page.Number,
				"total_pages":           page.TotalPages,
				"total_items":           page.TotalItems,
			})
			return
		}
		v.render(w, OperationList, http.StatusOK, map[string]any{
			v.cfg.VerboseNamePlural: page,
		})
		return
	}

	var items []T
	if err := v.querysetOf(ctx).Find(&items).Error; err != nil {
		v.serverError(w, r, err)
		return
	}
	if v.wantsJSON(r) {
		writeSuccessWithData(w, r, "", map[string]any{v.cfg.VerboseNamePlural: items})
		return
	}
	v.render(w, OperationList, http.StatusOK, map[string]any{
		v.cfg.VerboseNamePlural: items,
	})
}

// paginatedQuery fetches one page of the queryset. Page numbers past the end
// clamp to the last page, like the GET fallback a list UI expects.
func (v *View[T]) paginatedQuery(r *http.Request, number int) (Page[T], error) {
	ctx := r.Context()
	page := Page[T]{Number: number, Size: v.cfg.PaginateBy}

	if err := v.querysetOf(ctx).Count(&page.TotalItems).Error; err != nil {
		return page, err
	}
	page.TotalPages = int((page.TotalItems + int64(page.Size) - 1) / int64(page.Size))
	if page.TotalPages < 1 {
		page.TotalPages = 1
	}
	if page.Number > page.TotalPages {
		page.Number = page.TotalPages
	}

	offset := (page.Number - 1) * page.Size
	err := v.querysetOf(ctx).Offset(offset).Limit(page.Size).Find(&page.Items).Error
	return page, err
}
