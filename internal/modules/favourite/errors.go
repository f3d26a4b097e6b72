package favourite

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrTargetNotFound    = errors.New("target not found")
	ErrFavouriteNotFound = errors.New("favourite not found")
	ErrUnknownTarget     = errors.New("unknown favourite target")
)
