package config

import "errors"

// Error definitions, named the way the upstream config package's errors.go
// names its sentinels.
var (
	ErrEmptySectionName     = errors.New("empty section name")
	ErrMalformedLine        = errors.New("malformed line, expected key = value")
	ErrInvalidTarget        = errors.New("invalid unmarshal target")
	ErrInvalidTag           = errors.New("invalid config tag, expected section.key")
	ErrInvalidValue         = errors.New("invalid value for field type")
	ErrUnsupportedFieldType = errors.New("unsupported field type")
)
