package config

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyMoniker          = errors.New("moniker must not be empty")
	ErrEmptyChainID          = errors.New("chain_id must not be empty")
	ErrUnknownSigningVariant = errors.New("unknown signing_variant (must be 'min-pk' or 'min-sig')")
	ErrUnknownLogFormat      = errors.New("unknown log_format (must be 'plain' or 'json')")
	ErrNonPositiveTimeout    = errors.New("timeout must be greater than zero")
	ErrNegativeDelay         = errors.New("delay must not be negative")
)

// ErrInSection is returned if validate basic does not pass for any underlying config section.
type ErrInSection struct {
	Err     error
	Section string
}

func (e ErrInSection) Error() string {
	return fmt.Sprintf("error in [%s] section: %s", e.Section, e.Err.Error())
}

func (e ErrInSection) Unwrap() error {
	return e.Err
}
