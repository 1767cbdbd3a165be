package model

import "errors"

var (
	ErrCatalogIntegrity = errors.New("catalog integrity violation")
	ErrTemplateLoad     = errors.New("order template unavailable")
	ErrNoFormFields     = errors.New("document has no fillable fields")
	ErrInvalidLocale    = errors.New("invalid language tag")
	ErrUnknownSortMode  = errors.New("unknown sort mode")
)
