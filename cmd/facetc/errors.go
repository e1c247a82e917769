/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package main

import "errors"

var ErrInvalidConfig = errors.New("invalid configuration")

var ErrSchemaErrors = errors.New("schema errors found")

var ErrNoFiles = errors.New("no schema files specified")
