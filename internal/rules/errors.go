package rules

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is returned when a rule key carries no rule name
	ErrEmptyName = errors.New("rule name is empty")

	// ErrEmptySources is returned when a rule's source list is empty or contains a blank entry
	ErrEmptySources = errors.New("rule has no source paths")

	// ErrInvalidSourcePath is returned when a source path does not begin with '/'
	ErrInvalidSourcePath = errors.New("source path must begin with '/'")

	// ErrMissingTarget is returned when a rule has no __TARGET key or an empty one
	ErrMissingTarget = errors.New("rule has no target")

	// ErrInvalidCode is returned when __CODE is not a recognized redirect status code
	ErrInvalidCode = errors.New("invalid redirect status code")

	// ErrInvalidBool is returned when a boolean option is not "true" or "false"
	ErrInvalidBool = errors.New("invalid boolean value, expected \"true\" or \"false\"")

	// ErrUnknownOption is returned when a rule key carries an unrecognized option suffix
	ErrUnknownOption = errors.New("unrecognized rule option")

	// ErrOrphanOption is returned when an option key references a rule that was never declared
	ErrOrphanOption = errors.New("option key without a matching rule")

	// ErrDuplicateName is returned when two rules share the same name
	ErrDuplicateName = errors.New("duplicate rule name")

	// ErrDuplicateSource is returned when a source path is claimed by more than one rule
	ErrDuplicateSource = errors.New("source path claimed by more than one rule")
)

// ConfigError is a startup-time configuration failure. It wraps one of the
// sentinel errors above and names the offending rule and key so the process
// can abort with a usable diagnostic.
type ConfigError struct {
	Rule string // rule name, if known
	Key  string // configuration key that triggered the failure
	Err  error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Rule != "" && e.Key != "":
		return fmt.Sprintf("redirect rule %q: key %q: %v", e.Rule, e.Key, e.Err)
	case e.Key != "":
		return fmt.Sprintf("redirect config key %q: %v", e.Key, e.Err)
	default:
		return fmt.Sprintf("redirect rule %q: %v", e.Rule, e.Err)
	}
}

// Unwrap returns the sentinel error so callers can use errors.Is
func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configErr(rule, key string, err error) *ConfigError {
	return &ConfigError{Rule: rule, Key: key, Err: err}
}
