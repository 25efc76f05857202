package application

import "errors"

var (
	ErrValidation         = errors.New("invalid input")
	ErrConflict           = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("account not found")
	ErrInternal           = errors.New("internal error")
)
