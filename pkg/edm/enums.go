/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package edm

// Concurrency mode of property
type ConcurrencyMode uint8

const (
	ConcurrencyMode_None ConcurrencyMode = iota
	ConcurrencyMode_Fixed

	ConcurrencyMode_Count
)

var concurrencyModeLiterals = [ConcurrencyMode_Count]string{"None", "Fixed"}

// Returns literal as it is written in schema, e.g. «Fixed»
func (m ConcurrencyMode) String() string {
	if m < ConcurrencyMode_Count {
		return concurrencyModeLiterals[m]
	}
	return "ConcurrencyMode(?)"
}

// Parses schema literal. Literals are case sensitive.
func ParseConcurrencyMode(s string) (ConcurrencyMode, bool) {
	for m := ConcurrencyMode(0); m < ConcurrencyMode_Count; m++ {
		if concurrencyModeLiterals[m] == s {
			return m, true
		}
	}
	return ConcurrencyMode_None, false
}

// Pattern of value generation by store
type StoreGeneratedPattern uint8

const (
	StoreGeneratedPattern_None StoreGeneratedPattern = iota
	StoreGeneratedPattern_Identity
	StoreGeneratedPattern_Computed

	StoreGeneratedPattern_Count
)

var storeGeneratedPatternLiterals = [StoreGeneratedPattern_Count]string{"None", "Identity", "Computed"}

// Returns literal as it is written in schema, e.g. «Identity»
func (p StoreGeneratedPattern) String() string {
	if p < StoreGeneratedPattern_Count {
		return storeGeneratedPatternLiterals[p]
	}
	return "StoreGeneratedPattern(?)"
}

// Parses schema literal. Literals are case sensitive.
func ParseStoreGeneratedPattern(s string) (StoreGeneratedPattern, bool) {
	for p := StoreGeneratedPattern(0); p < StoreGeneratedPattern_Count; p++ {
		if storeGeneratedPatternLiterals[p] == s {
			return p, true
		}
	}
	return StoreGeneratedPattern_None, false
}

// Model family of schema document
type DataModel uint8

const (
	// Conceptual model (CSDL)
	EntityDataModel DataModel = iota

	// Storage model (SSDL)
	ProviderDataModel

	// Provider manifest
	ProviderManifestModel

	DataModel_Count
)

var dataModelNames = [DataModel_Count]string{"EntityDataModel", "ProviderDataModel", "ProviderManifestModel"}

func (m DataModel) String() string {
	if m < DataModel_Count {
		return dataModelNames[m]
	}
	return "DataModel(?)"
}
