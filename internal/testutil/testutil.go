// Package testutil provides shared fixtures for argue tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Iron-Ham/argue/internal/af"
	"github.com/Iron-Ham/argue/internal/apx"
)

// Canonical fixture frameworks used across the test suites.
const (
	// ChainAPX is a -> b -> c. Unique complete extension {a,c}, also stable.
	ChainAPX = "arg(a).\narg(b).\narg(c).\natt(a,b).\natt(b,c).\n"

	// TwoCycleAPX is a <-> b. Complete: {}, {a}, {b}; stable: {a}, {b}.
	TwoCycleAPX = "arg(a).\narg(b).\natt(a,b).\natt(b,a).\n"

	// ThreeCycleAPX is a -> b -> c -> a. Complete: {} only; no stable
	// extension.
	ThreeCycleAPX = "arg(a).\narg(b).\narg(c).\natt(a,b).\natt(b,c).\natt(c,a).\n"

	// SelfLoopAPX is a single self-attacking argument. Complete: {} only;
	// no stable extension.
	SelfLoopAPX = "arg(a).\natt(a,a).\n"
)

// MustFramework parses an APX description, failing the test on any error.
func MustFramework(t *testing.T, source string) *af.Framework {
	t.Helper()

	fw, err := apx.Parse(strings.NewReader(source))
	if err != nil {
		t.Fatalf("failed to parse fixture framework: %v", err)
	}
	return fw
}

// MustBuild builds a framework from literals, failing the test on any error.
func MustBuild(t *testing.T, args []string, attacks [][2]string) *af.Framework {
	t.Helper()

	arguments := make([]af.Argument, len(args))
	for i, a := range args {
		arguments[i] = af.Argument(a)
	}
	atts := make([]af.Attack, len(attacks))
	for i, pair := range attacks {
		atts[i] = af.Attack{Source: af.Argument(pair[0]), Target: af.Argument(pair[1])}
	}

	fw, err := af.Build(arguments, atts)
	if err != nil {
		t.Fatalf("failed to build fixture framework: %v", err)
	}
	return fw
}

// TempAPX writes source to a fresh .apx file under the test's temp dir and
// returns its path. The file is removed with the test's temp dir.
func TempAPX(t *testing.T, source string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "framework.apx")
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		t.Fatalf("failed to write fixture apx file: %v", err)
	}
	return path
}

// Args converts plain strings to arguments.
func Args(names ...string) []af.Argument {
	out := make([]af.Argument, len(names))
	for i, n := range names {
		out[i] = af.Argument(n)
	}
	return out
}
