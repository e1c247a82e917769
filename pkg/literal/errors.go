/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package literal

import (
	"errors"
	"fmt"
)

var ErrInvalidLiteral = errors.New("invalid literal")

var ErrOutOfRange = errors.New("out of range")

func errInvalid(kind, s string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: %s «%s»: %w", ErrInvalidLiteral, kind, s, cause)
	}
	return fmt.Errorf("%w: %s «%s»", ErrInvalidLiteral, kind, s)
}

func errOutOfRange(kind, s, min, max string) error {
	return fmt.Errorf("%w: %s «%s», expected [%s, %s]", ErrOutOfRange, kind, s, min, max)
}
