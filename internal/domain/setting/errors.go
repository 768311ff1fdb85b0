package setting

import "errors"

var ErrInvalidKey = errors.New("setting key must match [a-z0-9_.-] and be at most 100 characters")
