package envvars

import (
	"env-binder/caller"
	"env-binder/convert"
	"env-binder/discover"
)

type (
	// ConversionError reports a value that could not be converted into its field's type.
	ConversionError = convert.ConversionError
	// ResolutionError reports a caller that could not be resolved to a registered target.
	ResolutionError = caller.ResolutionError
)

var (
	ErrInvalidTarget = discover.ErrInvalidTarget
	ErrNotRegistered = caller.ErrNotRegistered
)
