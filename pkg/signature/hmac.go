package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// SignatureKey is reserved: it is appended by SignedQuery and must never be
// set by the caller.
const SignatureKey = "signature"

var (
	ErrEmptySecret = errors.New("signature: empty secret")
	ErrEmptyParams = errors.New("signature: empty parameter set")
	ErrReservedKey = errors.New("signature: parameter key \"signature\" is reserved")
)

// Sign computes the HMAC-SHA256 of the canonical query string of params,
// keyed by the raw bytes of secret, and returns it as lowercase hex.
//
// The digest covers Encode() exactly: insertion order, no URL-encoding. Any
// re-encoding or reordering between signing and transmission produces a
// signature the upstream rejects.
func Sign(secret string, params *Params) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	if params == nil || params.Len() == 0 {
		return "", ErrEmptyParams
	}
	if _, ok := params.Get(SignatureKey); ok {
		return "", ErrReservedKey
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(params.Encode()))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// SignedQuery returns the wire-ready query string: the canonical
// serialization with signature=<hex> appended as the last parameter.
func SignedQuery(secret string, params *Params) (string, error) {
	sig, err := Sign(secret, params)
	if err != nil {
		return "", err
	}
	return params.Encode() + "&" + SignatureKey + "=" + sig, nil
}

// IsInvalidInput reports whether err is one of the input validation errors
// returned by Sign.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrEmptySecret) ||
		errors.Is(err, ErrEmptyParams) ||
		errors.Is(err, ErrReservedKey)
}
