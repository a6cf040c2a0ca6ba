package config

import "errors"

// ErrInvalidConfig indicates a structurally invalid configuration file.
var ErrInvalidConfig = errors.New("invalid configuration")
