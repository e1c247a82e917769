/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package cobrau

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/voedger/edmfacets/pkg/goutils/logger"
)

func TestPrepareRootCmd(t *testing.T) {
	require := require.New(t)
	defer logger.SetLogLevel(logger.SetLogLevel(logger.LogLevelInfo))

	executed := false
	sub := &cobra.Command{
		Use: "run",
		RunE: func(cmd *cobra.Command, args []string) error {
			executed = true
			require.True(logger.IsVerbose())
			return nil
		},
	}

	root := PrepareRootCmd("tool", "Test tool", []string{"tool", "run", "-v"}, "1.2.3", sub)
	require.NoError(root.Execute())
	require.True(executed)

	out := bytes.Buffer{}
	root = PrepareRootCmd("tool", "Test tool", []string{"tool", "version"}, "1.2.3")
	root.SetOut(&out)
	require.NoError(root.Execute())
	require.Equal("tool version 1.2.3\n", out.String())
}

func TestGoAndCatchInterrupt(t *testing.T) {
	testErr := errors.New("test")
	err := goAndCatchInterrupt(func(ctx context.Context) error {
		require.NoError(t, ctx.Err())
		return testErr
	})
	require.ErrorIs(t, err, testErr)
}
