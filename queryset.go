package crudview

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// querysetOf returns the records this view operates on: the explicit queryset
// override when set, otherwise all records of the model.
func (v *View[T]) querysetOf(ctx context.Context) *gorm.DB {
	if v.queryset != nil {
		return v.queryset.WithContext(ctx)
	}
	return v.db.WithContext(ctx).Model(new(T))
}

// writer returns a clean session for mutations: the configured database when
// present, otherwise the queryset's underlying connection stripped of its
// scoping clauses. A queryset-only view can therefore still create, update
// and delete.
func (v *View[T]) writer(ctx context.Context) *gorm.DB {
	if v.db != nil {
		return v.db.WithContext(ctx)
	}
	return v.queryset.Session(&gorm.Session{NewDB: true, Context: ctx})
}

// getObject fetches the record identified by pk from the queryset.
// A missing record reports gorm.ErrRecordNotFound.
func (v *View[T]) getObject(ctx context.Context, pk string) (*T, error) {
	obj := new(T)
	err := v.querysetOf(ctx).Where("id = ?", pk).First(obj).Error
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
