/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package testingu

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCaptureStdoutStderr(t *testing.T) {
	require := require.New(t)

	errTest := errors.New("test error")
	stdout, stderr, err := CaptureStdoutStderr(func() error {
		fmt.Fprint(os.Stdout, "to stdout")
		fmt.Fprint(os.Stderr, "to stderr")
		return errTest
	})
	require.Equal("to stdout", stdout)
	require.Equal("to stderr", stderr)
	require.ErrorIs(err, errTest)

	require.NotNil(os.Stdout)
	require.NotNil(os.Stderr)
}

func TestRunCmdTestCases(t *testing.T) {
	errUnknown := errors.New("unknown command")

	execute := func(args []string, version string) error {
		switch args[1] {
		case "version":
			fmt.Println("tool version", version)
			return nil
		case "warn":
			fmt.Fprintln(os.Stderr, "warning")
			return nil
		}
		return fmt.Errorf("%w: %s", errUnknown, args[1])
	}

	RunCmdTestCases(t, execute, []CmdTestCase{
		{
			Name:                     "version",
			Args:                     []string{"tool", "version"},
			ExpectedStdoutPatterns:   []string{"tool version 1.0.0"},
			ExpectedStderrPatterns:   []string{""},
			UnexpectedStdoutPatterns: []string{"warning"},
		},
		{
			Name:                   "stderr",
			Args:                   []string{"tool", "warn"},
			ExpectedStdoutPatterns: []string{""},
			ExpectedStderrPatterns: []string{"warning"},
		},
		{
			Name:                "error",
			Args:                []string{"tool", "bad"},
			ExpectedErr:         errUnknown,
			ExpectedErrPatterns: []string{"bad"},
		},
	}, "1.0.0")
}
