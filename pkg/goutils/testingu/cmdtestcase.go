/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package testingu

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
)

// Test case of command line utility
type CmdTestCase struct {
	Name string

	// Command line arguments including program name
	Args []string

	// Expected error, checked by errors.Is. Nil if no error expected
	ExpectedErr error

	// Substrings expected in returned error
	ExpectedErrPatterns []string

	// Substrings expected in stdout. Empty pattern means stdout should be empty
	ExpectedStdoutPatterns []string

	// Substrings expected in stderr. Empty pattern means stderr should be empty
	ExpectedStderrPatterns []string

	// Substrings not expected in stdout
	UnexpectedStdoutPatterns []string
}

// Runs test cases. Each case executes command with captured stdout and stderr
func RunCmdTestCases(t *testing.T, execute func(args []string, version string) error, testCases []CmdTestCase, version string) {
	t.Helper()
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Helper()
			stdout, stderr, err := CaptureStdoutStderr(func() error {
				return execute(tc.Args, version)
			})
			t.Log("stdout:", stdout)
			t.Log("stderr:", stderr)

			checkOutput(t, "stdout", stdout, tc.ExpectedStdoutPatterns)
			checkOutput(t, "stderr", stderr, tc.ExpectedStderrPatterns)
			for _, p := range tc.UnexpectedStdoutPatterns {
				if strings.Contains(stdout, p) {
					t.Errorf("stdout: unexpected pattern `%v`, actual `%v`", p, stdout)
				}
			}
			checkError(t, tc.ExpectedErr, tc.ExpectedErrPatterns, err)
		})
	}
}

func checkError(t *testing.T, expected error, patterns []string, actual error) {
	t.Helper()
	if expected == nil && len(patterns) == 0 {
		if actual != nil {
			t.Errorf("unexpected error was returned: %v", actual)
		}
		return
	}
	if actual == nil {
		t.Errorf("error was not returned as expected")
		return
	}
	if expected != nil && !errors.Is(actual, expected) {
		t.Errorf("wrong error was returned: expected `%v`, got `%v`", expected, actual)
	}
	for _, p := range patterns {
		if !strings.Contains(actual.Error(), p) {
			t.Errorf("wrong error was returned: expected pattern `%v`, got `%v`", p, actual)
		}
	}
}

func checkOutput(t *testing.T, title, actual string, patterns []string) {
	t.Helper()
	for _, p := range patterns {
		switch {
		case p == "" && actual != "":
			t.Errorf("%s: expected nothing, got `%v`", title, actual)
		case p != "" && !strings.Contains(actual, p):
			t.Errorf("%s: expected pattern `%v`, actual `%v`", title, p, actual)
		}
	}
}

// Calls f with os.Stdout and os.Stderr redirected to pipes, returns captured output and f result.
//
// Not safe for parallel tests.
func CaptureStdoutStderr(f func() error) (stdout string, stderr string, err error) {
	outR, outW, err := os.Pipe()
	if err != nil {
		return "", "", err
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		outR.Close()
		outW.Close()
		return "", "", err
	}

	origOut, origErr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = outW, errW
	defer func() { os.Stdout, os.Stderr = origOut, origErr }()

	wg := sync.WaitGroup{}
	read := func(r io.Reader, s *string) {
		defer wg.Done()
		b := bytes.Buffer{}
		_, _ = io.Copy(&b, r)
		*s = b.String()
	}
	wg.Add(2)
	go read(outR, &stdout)
	go read(errR, &stderr)

	err = f()

	outW.Close()
	errW.Close()
	wg.Wait()
	return stdout, stderr, err
}
