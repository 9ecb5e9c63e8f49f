package config

import "errors"

// Sentinel errors for configuration failure modes. Callers should use
// errors.Is() to check for these.
var (
	// ErrInvalidConfig indicates the configuration is syntactically or
	// semantically invalid (bad range grammar, conflicting options).
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrNoTargets indicates no input URLs were provided via flags,
	// list file, or stdin.
	ErrNoTargets = errors.New("config: no target URLs provided (use -u, -list, or pipe URLs on stdin)")
)
