/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/voedger/edmfacets/pkg/goutils/cobrau"
)

//go:embed version
var version string

var (
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
)

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		fmt.Fprintln(os.Stderr, red(err))
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	rootCmd := cobrau.PrepareRootCmd(
		"facetc",
		"Validates facets of property declarations in conceptual and storage schemas",
		args,
		ver,
		newCompileCmd(),
		newTypesCmd(),
	)
	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}
