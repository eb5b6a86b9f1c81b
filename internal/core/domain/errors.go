package domain

import "errors"

var (
	ErrSettingsNotFound   = errors.New("delivery settings not found")
	ErrNoRiderSnapshot    = errors.New("no rider availability snapshot")
	ErrEmptyCart          = errors.New("cart has no items")
	ErrNonFiniteAmount    = errors.New("non-finite amount in quote computation")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)
