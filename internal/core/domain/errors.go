package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("invalid data")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrOrderFinished      = errors.New("order is finished")
)
