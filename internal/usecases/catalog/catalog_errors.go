package catalog

import "errors"

var (
	ErrMissingItemFields = errors.New("item name and price are required")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating item id")
)
