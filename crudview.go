// Package crudview provides a generic, configurable CRUD view for Go web applications.
// A single View serves the five conventional operations (list, detail, create, update,
// delete) over one GORM model, and a Router generates the matching URL patterns.
package crudview

import "fmt"

// Operation identifies one of the five CRUD view operations.
type Operation string

// The five operations a View can serve.
const (
	OperationList   Operation = "list"
	OperationDetail Operation = "detail"
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// AllOperations lists every operation in emission order.
var AllOperations = []Operation{
	OperationList,
	OperationDetail,
	OperationCreate,
	OperationUpdate,
	OperationDelete,
}

// mutations are the operations that change persisted state and therefore
// require a redirect target.
var mutations = []Operation{OperationCreate, OperationUpdate, OperationDelete}

func isKnownOperation(op Operation) bool {
	for _, known := range AllOperations {
		if op == known {
			return true
		}
	}
	return false
}

// ConfigError reports an invalid view or router configuration.
// It is returned eagerly, at construction or registration time.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return e.msg
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}
