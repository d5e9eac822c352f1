package classifier

import "errors"

var (
	ErrClassification = errors.New("image classification failed")
	ErrInvalidLabels  = errors.New("invalid label vocabulary")
)
