package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrAlreadyExists will throw if the relation would violate a uniqueness invariant
	ErrAlreadyExists = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrSelfReference will throw if an actor tries to follow itself
	ErrSelfReference = errors.New("you can not follow yourself")
	// ErrSelfLike will throw if the author tries to like their own post
	ErrSelfLike = errors.New("you cannot like your own post")
	// ErrSelfUnlike will throw if the author tries to unlike their own post
	ErrSelfUnlike = errors.New("you cannot unlike your own post")
	// ErrUnauthorized will throw if the request carries no valid identity
	ErrUnauthorized = errors.New("user not authenticated")
	// ErrCacheMiss is returned by cache implementations when the key is absent
	ErrCacheMiss = errors.New("cache miss")
)
