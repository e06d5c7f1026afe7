package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret)))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("auth.token_ttl must be > 0 (got %s)", c.Auth.TokenTTL))
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("auth.bcrypt_cost must be within [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost))
	}

	if err := c.Polls.validate(); err != nil {
		errs = append(errs, fmt.Errorf("polls: %w", err))
	}
	if err := c.Comments.validate(); err != nil {
		errs = append(errs, fmt.Errorf("comments: %w", err))
	}

	if c.RateLimit.AuthPerMinute <= 0 || c.RateLimit.AuthBurst <= 0 {
		errs = append(errs, errors.New("rate_limit: auth_per_minute and auth_burst must be > 0"))
	}
	if c.Cache.Enabled() && c.Cache.ReportTTL <= 0 {
		errs = append(errs, fmt.Errorf("cache.report_ttl must be > 0 when cache is enabled (got %s)", c.Cache.ReportTTL))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format))
	}

	return errors.Join(errs...)
}

func (p PollsConfig) validate() error {
	if p.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", p.DefaultPageSize)
	}
	if p.MaxPageSize < p.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", p.MaxPageSize, p.DefaultPageSize)
	}
	if p.MaxOptions < 2 {
		return fmt.Errorf("max_options must be >= 2 (got %d)", p.MaxOptions)
	}
	return nil
}

func (c CommentsConfig) validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be > 0 (got %d)", c.PageSize)
	}
	if c.MaxPageSize < c.PageSize {
		return fmt.Errorf("max_page_size must be >= page_size (got %d < %d)", c.MaxPageSize, c.PageSize)
	}
	if c.MaxLength <= 0 {
		return fmt.Errorf("max_length must be > 0 (got %d)", c.MaxLength)
	}
	return nil
}
