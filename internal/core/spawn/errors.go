package spawn

import "errors"

var (
	ErrDecode       = errors.New("spawn table could not be decoded")
	ErrSchema       = errors.New("spawn table does not match schema")
	ErrInvalidTable = errors.New("invalid spawn table")
)
