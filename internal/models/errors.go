package models

import (
	"errors"
)

var (
	ErrValidation     = errors.New("validation error")
	ErrServiceFailure = errors.New("categorizer service error")
)
