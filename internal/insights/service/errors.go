package service

import (
	"errors"
	"fmt"

	"golang-trading-insights/pkg/restclient"
)

// ErrNoBotsFound is returned when the bot status snapshot is empty.
var ErrNoBotsFound = errors.New("no bots found")

// ValidationError rejects user input before any network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConfigErrorKind classifies a rejected configuration value.
type ConfigErrorKind string

// InvalidURLFormat is reported for an empty or non-http(s) override URL.
const InvalidURLFormat ConfigErrorKind = "invalid_url_format"

// ConfigError rejects an endpoint configuration change.
type ConfigError struct {
	Kind ConfigErrorKind
	URL  string
}

func (e *ConfigError) Error() string {
	if e.URL == "" {
		return "URL cannot be empty"
	}
	return "URL must start with http:// or https://"
}

// DomainNotFoundError is returned by derived lookups with no matching record.
type DomainNotFoundError struct {
	Resource string
	Key      string
}

func (e *DomainNotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// IsDomainNotFound reports whether err is a DomainNotFoundError.
func IsDomainNotFound(err error) bool {
	var target *DomainNotFoundError
	return errors.As(err, &target)
}

// IsValidation reports whether err was raised by client-side validation,
// including rejected configuration values.
func IsValidation(err error) bool {
	var validation *ValidationError
	var cfg *ConfigError
	return errors.As(err, &validation) || errors.As(err, &cfg)
}

// UserMessage renders err the way it is shown to the user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var statusErr *restclient.HTTPStatusError
	var transportErr *restclient.TransportError
	var malformedErr *restclient.MalformedResponseError
	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("Error: %d - %s", statusErr.StatusCode, statusErr.Message)
	case errors.As(err, &transportErr):
		return fmt.Sprintf("Network error: %v", transportErr.Err)
	case errors.As(err, &malformedErr):
		return fmt.Sprintf("Invalid response: %v", malformedErr.Err)
	default:
		return err.Error()
	}
}

// notFoundAsEmpty turns a 404 into an absent value.
func notFoundAsEmpty[T any](v *T, err error) (*T, error) {
	if restclient.StatusCode(err) == 404 {
		return nil, nil
	}
	return v, err
}
