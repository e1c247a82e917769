/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package main

const defaultConfigFile = "facetc.yaml"

// Environment variables, may be declared in .env file
const (
	env_Manifest      = "FACETC_MANIFEST"
	env_StrongSpatial = "FACETC_STRONG_SPATIAL"
	env_Parallelism   = "FACETC_PARALLELISM"
)

// Flags
const (
	flag_Config        = "config"
	flag_Manifest      = "manifest"
	flag_StrongSpatial = "strong-spatial"
	flag_Model         = "model"
	flag_Parallelism   = "parallelism"
	flag_Complain      = "complain"
	flag_PrintUsage    = "print-usage"
	flag_EDM           = "edm"
)
