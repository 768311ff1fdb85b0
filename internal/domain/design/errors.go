package design

import "errors"

var (
	ErrDesignNotFound = errors.New("design not found")
	ErrIDRequired     = errors.New("design id is required")
	ErrNameRequired   = errors.New("design name is required")
	ErrOwnerRequired  = errors.New("user_id is required for non-template designs")
)
