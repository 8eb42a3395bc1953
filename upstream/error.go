package upstream

import (
	"errors"
	"fmt"
)

// Error is a non-2xx reply from the exchange. Code and Message come from the
// upstream JSON error body ({"code":-1121,"msg":"Invalid symbol."}) when it
// parses; StatusCode is always set.
type Error struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("upstream returned %d (code %d): %s", e.StatusCode, e.Code, e.Message)
}

// AsError unwraps err into an upstream *Error when it is one. A false return
// means the call never produced an upstream reply (transport failure) or
// failed before dispatch.
func AsError(err error) (*Error, bool) {
	var ue *Error
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
