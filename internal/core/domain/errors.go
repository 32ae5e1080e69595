package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("username or email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrBerichtNotFound = errors.New("contactbericht not found")
	ErrOfferteNotFound = errors.New("offerte not found")

	ErrZendingNotFound   = errors.New("zending not found")
	ErrDuplicateZending  = errors.New("zending already exists")
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrForbidden = errors.New("forbidden")
)
