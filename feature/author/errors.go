package author

import "fmt"

// ResolveError reports a handle that could not be resolved to a profile.
// Each failure condition carries its own message; none of them mutate any
// state outside this feature.
type ResolveError struct {
	Handle string
	msg    string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("%s: %s", e.Handle, e.msg)
}

func errInvalidHandle(handle string) *ResolveError {
	return &ResolveError{Handle: handle, msg: "invalid handle (expected name@host)"}
}

func errAccountNotFound(handle string) *ResolveError {
	return &ResolveError{Handle: handle, msg: "account does not exist"}
}

func errNoProfileLink(handle string) *ResolveError {
	return &ResolveError{Handle: handle, msg: "account has no profile link"}
}

func errProfileNotFound(handle string) *ResolveError {
	return &ResolveError{Handle: handle, msg: "profile does not exist"}
}

// errProfileDenied covers servers that require authenticated profile
// fetches. There is no retry-with-credentials path; the failure is surfaced
// to the operator as-is.
func errProfileDenied(handle string) *ResolveError {
	return &ResolveError{Handle: handle, msg: "profile access denied"}
}
