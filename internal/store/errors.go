package store

import "errors"

var (
	// ErrDuplicateUsername is returned by AddUser when the username is taken.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrDuplicateShiftForDate is returned by AddShift when the worker
	// already has a shift on that date.
	ErrDuplicateShiftForDate = errors.New("worker already has a shift on that date")

	// ErrInvalidCredentials is returned on failed authentication. It does
	// not reveal whether the username exists.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
