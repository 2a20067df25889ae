package directory

import (
	"fmt"
	"strings"
)

// DiscoveryError reports a host that could not be classified: missing or
// unusable discovery data, or software outside the supported families.
// Recoverable; the caller may retry with a different host.
type DiscoveryError struct {
	msg string
	// Software is the unsupported software name, when that was the cause.
	Software string
}

func (e *DiscoveryError) Error() string { return e.msg }

func errNoServerInfo() *DiscoveryError {
	return &DiscoveryError{msg: "server information could not be determined"}
}

func errNoServerName() *DiscoveryError {
	return &DiscoveryError{msg: "server name could not be determined"}
}

func errUnsupportedSoftware(name string) *DiscoveryError {
	return &DiscoveryError{
		msg:      fmt.Sprintf("server software is not supported (%s)", name),
		Software: name,
	}
}

// ValidationError reports a remote payload that failed its structural schema.
// A hard stop for the sync attempt; nothing is written.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid payload: %s: %v", e.Reason, e.Err)
	}
	return "invalid payload: " + e.Reason
}

func (e *ValidationError) Unwrap() error { return e.Err }

// DuplicateKeyError is the single destructive failure: the remote emoji set
// contained colliding shortcodes, so the Server row (and its emoji) were
// deleted. Shortcodes is sorted lexicographically.
type DuplicateKeyError struct {
	Host       string
	Shortcodes []string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("emoji registration failed for %s: duplicated shortcodes: %s",
		e.Host, strings.Join(e.Shortcodes, ", "))
}
