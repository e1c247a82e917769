/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/voedger/edmfacets/pkg/edm"
	"github.com/voedger/edmfacets/pkg/manifest"
)

func newTypesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List types of store provider manifest with their facet descriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if ok, _ := cmd.Flags().GetBool(flag_EDM); ok {
				printTypes(cmd.OutOrStdout(), edm.EDM())
				return nil
			}
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			cat, err := cfg.storeCatalog()
			if err != nil {
				return err
			}
			if cat == nil {
				if cat, err = manifest.Default().Catalog(); err != nil {
					return err
				}
			}
			printTypes(cmd.OutOrStdout(), cat)
			return nil
		},
	}
	addConfigFlags(cmd)
	cmd.Flags().Bool(flag_EDM, false, "List conceptual primitive types instead of store types")
	return cmd
}

func printTypes(w io.Writer, cat edm.ICatalog) {
	for t := range cat.Types() {
		pt, ok := t.(edm.IPrimitiveType)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s (%s)\n", pt.FullName(), pt.PrimitiveKind().TrimString())
		for _, d := range pt.FacetDescriptions() {
			fmt.Fprintln(w, "  "+d.String())
		}
	}
}
