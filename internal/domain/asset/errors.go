package asset

import "errors"

var (
	ErrAssetNotFound       = errors.New("asset not found")
	ErrIDRequired          = errors.New("asset id is required")
	ErrNameRequired        = errors.New("asset name is required")
	ErrContentRequired     = errors.New("asset content is required")
	ErrAnonymousNotAllowed = errors.New("user_id is required for asset uploads")
)
