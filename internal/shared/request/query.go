// Package request parses optional query parameters into typed values,
// returning validation errors the response package understands.
package request

import (
	"net/http"
	"strconv"

	"planets-explorer/internal/shared/errors"
)

// Int64 reads key as a base-10 int64. ok is false when the parameter is
// absent or empty.
func Int64(r *http.Request, key string) (value int64, ok bool, err error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, false, nil
	}

	value, err = strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, errors.WrapValidation("invalid "+key+" parameter", err)
	}
	return value, true, nil
}

// NonNegativeInt reads key as an int that must be >= 0.
func NonNegativeInt(r *http.Request, key string) (value int, ok bool, err error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, false, nil
	}

	value, err = strconv.Atoi(raw)
	if err != nil {
		return 0, false, errors.WrapValidation("invalid "+key+" parameter", err)
	}
	if value < 0 {
		return 0, false, errors.Validationf("%s must not be negative", key)
	}
	return value, true, nil
}

// Bool reads key with strconv.ParseBool semantics.
func Bool(r *http.Request, key string) (value bool, ok bool, err error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return false, false, nil
	}

	value, err = strconv.ParseBool(raw)
	if err != nil {
		return false, false, errors.WrapValidation("invalid "+key+" parameter", err)
	}
	return value, true, nil
}
