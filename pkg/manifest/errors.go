/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package manifest

import (
	"errors"

	"github.com/voedger/edmfacets/pkg/edm"
)

var ErrManifestNotFound = errors.New("manifest file not found")

var ErrInvalidManifest = errors.New("invalid manifest")

func errInvalid(msg string, args ...any) error {
	return edm.EnrichError(ErrInvalidManifest, msg, args...)
}
