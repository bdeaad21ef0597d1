package passgen

import "github.com/pkg/errors"

var (
	// ErrInvalidLengthType the length specification is not an integer, a range or a list
	ErrInvalidLengthType = errors.New("invalid length type")

	// ErrInvalidLengthValue the length specification has no strictly positive candidate
	ErrInvalidLengthValue = errors.New("invalid length value")

	ErrUnknownPolicy = errors.New("unknown password policy")
)
