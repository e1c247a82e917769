/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package csdl

import (
	"errors"

	"github.com/voedger/edmfacets/pkg/edm"
)

var ErrInvalidDocument = errors.New("invalid schema document")

func errInvalidDocument(msg string, args ...any) error {
	return edm.EnrichError(ErrInvalidDocument, msg, args...)
}
