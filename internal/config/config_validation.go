package config

import (
	"errors"
	"time"
)

// Fallback values applied by applyDefaults when the merged configuration
// leaves a field unset.
const (
	DefaultHTTPAddress    = ":5000"
	DefaultTokenIssuer    = "fintrack"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultBcryptCost     = 10
	DefaultRequestTimeout = 30 * time.Second

	DefaultPlaidBaseURL         = "https://sandbox.plaid.com"
	DefaultPlaidTimeout         = 15 * time.Second
	DefaultSandboxInstitutionID = "ins_1"
)

// applyDefaults fills unset fields of the merged configuration with their
// documented fallback values. Secrets (sign key, provider credentials, DSN)
// intentionally have no fallback and are checked by validate instead.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = DefaultTokenDuration
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = DefaultBcryptCost
	}

	if cfg.Plaid.BaseURL == "" {
		cfg.Plaid.BaseURL = DefaultPlaidBaseURL
	}
	if cfg.Plaid.Timeout == 0 {
		cfg.Plaid.Timeout = DefaultPlaidTimeout
	}
	if cfg.Plaid.SandboxInstitutionID == "" {
		cfg.Plaid.SandboxInstitutionID = DefaultSandboxInstitutionID
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a joined error listing
// every missing required value.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Auth.TokenSignKey == "" {
		errs = append(errs, ErrInvalidAuthConfigs)
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}
	if cfg.Plaid.ClientID == "" || cfg.Plaid.Secret == "" {
		errs = append(errs, ErrInvalidPlaidConfigs)
	}

	return errors.Join(errs...)
}
