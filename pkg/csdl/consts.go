/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package csdl

import "strings"

// Namespaces of schema documents
const (
	NS_Annotation = "http://schemas.microsoft.com/ado/2009/02/edm/annotation"

	// Storage schema namespaces end with this suffix, e.g. «http://schemas.microsoft.com/ado/2009/11/edm/ssdl»
	ssdlNamespaceSuffix = "/ssdl"
)

// Element names
const (
	elem_Schema      = "Schema"
	elem_EntityType  = "EntityType"
	elem_ComplexType = "ComplexType"
	elem_EnumType    = "EnumType"
	elem_Property    = "Property"
)

// Attribute names
const (
	attr_Namespace             = "Namespace"
	attr_Name                  = "Name"
	attr_Type                  = "Type"
	attr_UnderlyingType        = "UnderlyingType"
	attr_UseStrongSpatialTypes = "UseStrongSpatialTypes"
	attr_XMLNS                 = "xmlns"
)

const defaultEnumUnderlyingType = "Int32"

const DefaultParallelism = 8

// Kind of schema document
type Model string

const (
	// Model is detected by schema namespace
	Model_Auto Model = ""

	// Conceptual schema
	Model_CSDL Model = "csdl"

	// Storage schema
	Model_SSDL Model = "ssdl"
)

// Parses model name, case insensitive. Empty name is Model_Auto.
func ParseModel(s string) (Model, bool) {
	switch m := Model(strings.ToLower(s)); m {
	case Model_Auto, Model_CSDL, Model_SSDL:
		return m, true
	}
	return Model_Auto, false
}
