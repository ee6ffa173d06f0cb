package catalog

import "errors"

var (
	ErrEmptyCatalog = errors.New("catalog: no vocabulary items")
	ErrDuplicateID  = errors.New("catalog: duplicate item id")
	ErrMissingID    = errors.New("catalog: item without id")
)
