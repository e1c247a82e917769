/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/voedger/edmfacets/pkg/csdl"
	"github.com/voedger/edmfacets/pkg/diag"
	"github.com/voedger/edmfacets/pkg/goutils/logger"
)

func newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile [files...]",
		Short: "Validate property declarations of schema documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrNoFiles
			}
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			printUsage, _ := cmd.Flags().GetBool(flag_PrintUsage)
			return compile(cmd.Context(), cmd.OutOrStdout(), args, cfg, printUsage)
		},
	}
	addConfigFlags(cmd)
	cmd.Flags().Bool(flag_StrongSpatial, false, "Use strong spatial types in conceptual schemas, overrides schema attribute")
	cmd.Flags().String(flag_Model, "", "Kind of schemas: csdl or ssdl, detected by namespace if empty")
	cmd.Flags().Int(flag_Parallelism, csdl.DefaultParallelism, "Max count of declarations validated concurrently")
	cmd.Flags().Bool(flag_Complain, false, "Report missed required facets")
	cmd.Flags().Bool(flag_PrintUsage, false, "Print resolved type usages")
	return cmd
}

// Compiles files and prints sorted errors. Returns ErrSchemaErrors if any error found
func compile(ctx context.Context, w io.Writer, files []string, cfg config, printUsage bool) error {
	opts, err := cfg.compileOptions()
	if err != nil {
		return err
	}

	errs := diag.NewCollector()
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		opts.Document = file
		schemas, err := csdl.Compile(ctx, data, opts, errs)
		if err != nil {
			return err
		}
		logger.Verbose(file, "compiled, schemas:", len(schemas))
		if printUsage {
			printSchemas(w, schemas)
		}
	}

	ee := errs.Errors()
	diag.Sort(ee)
	for _, e := range ee {
		printError(w, e)
	}
	if diag.HasErrors(ee) {
		return fmt.Errorf("%w: %d", ErrSchemaErrors, len(ee))
	}
	fmt.Fprintln(w, green(fmt.Sprintf("%d file(s) compiled, no errors", len(files))))
	return nil
}

func printSchemas(w io.Writer, schemas []*csdl.Schema) {
	for _, s := range schemas {
		fmt.Fprintf(w, "%s (%v)\n", s.Namespace, s.DataModel)
		for _, p := range s.Properties {
			if p.Type == nil {
				continue
			}
			fmt.Fprintf(w, "  %s: %v", p.Name, p.Result.Usage)
			if p.Result.DefaultText != "" {
				fmt.Fprintf(w, " = %s", p.Result.DefaultText)
			}
			fmt.Fprintln(w)
		}
	}
}

func printError(w io.Writer, e diag.Error) {
	switch e.Severity {
	case diag.Severity_Error:
		fmt.Fprintln(w, red(e.Error()))
	case diag.Severity_Warning:
		fmt.Fprintln(w, yellow(e.Error()))
	default:
		fmt.Fprintln(w, e.Error())
	}
}
