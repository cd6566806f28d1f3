package domain

import (
	"net/url"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// Settings holds the runtime configuration of xspring.
type Settings struct {
	// ServiceURL is the root of the Initializr service.
	ServiceURL string
	// Timeout bounds every HTTP exchange with the service.
	Timeout time.Duration
	// LogDir receives the daily debug log. Empty disables file logging.
	LogDir string
	// UserAgent identifies the client to the service.
	UserAgent string
}

// ValidateServiceURL accepts absolute http or https URLs with a host.
func ValidateServiceURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return zerr.With(WrapCause(err, ErrInvalidServiceURL), "url", raw)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return zerr.With(zerr.Wrap(ErrInvalidServiceURL, "expected an absolute http(s) URL"), "url", raw)
	}
	return nil
}

// ParseTimeout parses a Go duration string and requires it to be positive.
func ParseTimeout(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil || d <= 0 {
		return 0, zerr.With(zerr.Wrap(ErrInvalidTimeout, "cannot use timeout"), "timeout", raw)
	}
	return d, nil
}
