package ai

import "errors"

var (
	// ErrEmptyResponse indicates the annotation service answered with
	// no usable text.
	ErrEmptyResponse = errors.New("annotation service returned no text")
)
