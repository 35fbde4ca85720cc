// SPDX-License-Identifier: MIT

// Package testutil provides testing utilities for razortags.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// Case represents a parsed test case from a txtar archive.
type Case struct {
	// Name is the test case name (the archive filename without extension).
	Name string

	// Description is the comment block before any files.
	Description string

	// Args are the command line arguments from the "Args: ..." line in the
	// description, split on whitespace. The token $INPUT expands to the
	// directory holding the input files.
	Args []string

	// Inputs maps paths under "input/" to their contents.
	Inputs map[string][]byte

	// Want maps output names (e.g., "stdout") to expected content.
	Want map[string][]byte
}

// ParseCase parses a txtar archive into a test Case.
// The archive should contain:
//   - A description comment with an "Args: ..." line
//   - Zero or more "input/<path>" files, written to a temporary directory
//   - One or more "want/<name>" files with expected output
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Inputs:      make(map[string][]byte),
		Want:        make(map[string][]byte),
	}

	c.parseArgs()

	for _, f := range ar.Files {
		switch {
		case strings.HasPrefix(f.Name, "input/"):
			c.Inputs[strings.TrimPrefix(f.Name, "input/")] = f.Data
		case strings.HasPrefix(f.Name, "want/"):
			c.Want[strings.TrimPrefix(f.Name, "want/")] = f.Data
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected input/* or want/*)", f.Name)
		}
	}

	if len(c.Args) == 0 {
		return nil, fmt.Errorf("missing Args: line in archive comment")
	}

	if len(c.Want) == 0 {
		return nil, fmt.Errorf("missing want/* files in archive")
	}

	return c, nil
}

// parseArgs extracts arguments from the "Args: ..." line in the description.
func (c *Case) parseArgs() {
	for _, line := range strings.Split(c.Description, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "Args:"); ok {
			c.Args = strings.Fields(rest)
			break
		}
	}
}

// WriteInputs writes the input files under dir and returns the arguments
// with $INPUT expanded to dir.
func (c *Case) WriteInputs(t *testing.T, dir string) []string {
	t.Helper()

	for name, data := range c.Inputs {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("create input dir: %v", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatalf("write input %q: %v", name, err)
		}
	}

	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = strings.ReplaceAll(a, "$INPUT", dir)
	}
	return args
}

// Compare reports differences between the expected outputs and got.
// Outputs whose name ends in ".json" are compared as decoded JSON values,
// everything else as normalized text.
func (c *Case) Compare(t *testing.T, got map[string][]byte) {
	t.Helper()

	for wantFile := range c.Want {
		if _, ok := got[wantFile]; !ok {
			t.Errorf("missing output: %q", wantFile)
		}
	}

	for wantFile, wantContent := range c.Want {
		gotContent, ok := got[wantFile]
		if !ok {
			continue // Already reported as missing
		}

		if strings.HasSuffix(wantFile, ".json") {
			compareJSON(t, wantFile, wantContent, gotContent)
			continue
		}

		if diff := cmp.Diff(Normalize(wantContent), Normalize(gotContent)); diff != "" {
			t.Errorf("output %q mismatch (-want +got):\n%s", wantFile, diff)
		}
	}
}

func compareJSON(t *testing.T, name string, want, got []byte) {
	t.Helper()

	var wantValue, gotValue any
	if err := json.Unmarshal(want, &wantValue); err != nil {
		t.Fatalf("decode expected %q: %v", name, err)
	}
	if err := json.Unmarshal(got, &gotValue); err != nil {
		t.Errorf("output %q is not JSON: %v\n%s", name, err, got)
		return
	}
	if diff := cmp.Diff(wantValue, gotValue); diff != "" {
		t.Errorf("output %q mismatch (-want +got):\n%s", name, diff)
	}
}

// Normalize normalizes content for comparison:
// - Trims trailing whitespace from each line
// - Ensures consistent line endings
// - Trims trailing newlines
func Normalize(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// UpdateArchive replaces the want/* files of ar with got.
// Used for golden file updates with -update flag.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte) *txtar.Archive {
	result := &txtar.Archive{Comment: ar.Comment}

	for _, f := range ar.Files {
		if strings.HasPrefix(f.Name, "input/") {
			result.Files = append(result.Files, f)
		}
	}

	// Add want/* files in sorted order for determinism
	var wantFiles []string
	for name := range got {
		wantFiles = append(wantFiles, name)
	}
	sort.Strings(wantFiles)

	for _, name := range wantFiles {
		content := got[name]
		if len(content) > 0 && !bytes.HasSuffix(content, []byte("\n")) {
			content = append(content, '\n')
		}
		result.Files = append(result.Files, txtar.File{
			Name: "want/" + name,
			Data: content,
		})
	}

	return result
}

// LoadTestCases loads all txtar test cases from a directory.
func LoadTestCases(t *testing.T, dir string) []*Case {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}

	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	var cases []*Case
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}

		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		c, err := ParseCase(name, ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", name, err)
		}

		cases = append(cases, c)
	}

	// Sort by name for determinism
	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})

	return cases
}
