package chartpack

import (
	"errors"
)

var (
	// ErrConfiguration indicates invalid configuration. Surfaced at
	// construction, before any subprocess runs.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrConfigFile indicates the configuration file could not be read or
	// decoded.
	ErrConfigFile = errors.New("read configuration file")
)
