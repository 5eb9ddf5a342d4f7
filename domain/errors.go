package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrUnauthorized will throw if the request carries no valid credentials
	ErrUnauthorized = errors.New("user not authenticated")
	// ErrCacheMiss is returned by caches when nothing is stored for the key.
	// It is a signal, not a failure.
	ErrCacheMiss = errors.New("cache miss")
)
