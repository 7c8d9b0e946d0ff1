package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("controller rejected credentials")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("content filter not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
