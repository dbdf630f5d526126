package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates invalid session-token settings
	// (for example, a missing token sign key).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration: token sign key is required")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration: database DSN is required")
	// ErrInvalidPlaidConfigs indicates incomplete provider credentials
	// (client ID and secret are both required).
	ErrInvalidPlaidConfigs = errors.New("invalid provider configuration: client ID and secret are required")
)
