/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package edm

import "math"

// Facet names
const (
	FacetName_Nullable              = "Nullable"
	FacetName_DefaultValue          = "DefaultValue"
	FacetName_MaxLength             = "MaxLength"
	FacetName_FixedLength           = "FixedLength"
	FacetName_Unicode               = "Unicode"
	FacetName_Collation             = "Collation"
	FacetName_Precision             = "Precision"
	FacetName_Scale                 = "Scale"
	FacetName_SRID                  = "SRID"
	FacetName_IsStrict              = "IsStrict"
	FacetName_StoreGeneratedPattern = "StoreGeneratedPattern"
	FacetName_ConcurrencyMode       = "ConcurrencyMode"
)

// Namespace of built-in conceptual types, e.g. «Edm.String»
const EDMNamespace = "Edm"

const (
	MaxEDMLength           = math.MaxInt32
	MaxEDMDecimalPrecision = math.MaxUint8
	MaxEDMDecimalScale     = math.MaxUint8
	MaxEDMTimePrecision    = math.MaxUint8
	MaxSRID                = math.MaxInt32
)

const (
	DefaultGeographySRID = 4326
	DefaultGeometrySRID  = 0
)
