// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package source loads a compilation from C# sources and YAML manifests.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/albertocavalcante/razortags/internal/csharp"
	"github.com/albertocavalcante/razortags/internal/manifest"
	"github.com/albertocavalcante/razortags/symbols"
)

// DefaultAssembly is the assembly of C# sources when none is configured.
const DefaultAssembly = "Sources"

// ErrUnsupportedInput is returned for an input that is neither a directory,
// a .cs file, a .yaml manifest nor an http(s) manifest URL.
var ErrUnsupportedInput = errors.New("unsupported input")

// skippedDirs are build output and tooling directories never scanned.
var skippedDirs = map[string]bool{
	".git": true,
	".vs":  true,
	"bin":  true,
	"obj":  true,
}

// Options configures how a compilation is loaded.
type Options struct {
	// Paths are files, directories or manifest URLs. Directories are walked
	// recursively for .cs, .yaml and .yml files.
	Paths []string

	// Assembly is the containing assembly of C# source types.
	// If empty, DefaultAssembly is used.
	Assembly string

	// Concurrency bounds the number of files parsed at once.
	// If zero, GOMAXPROCS is used.
	Concurrency int

	// Timeout for fetching manifest URLs.
	Timeout time.Duration

	Logger *slog.Logger
}

// Result is a loaded compilation and where it came from.
type Result struct {
	Compilation *symbols.Compilation

	// Files lists the loaded inputs in load order.
	Files []string

	// SyntaxErrors lists C# files whose syntax tree contains errors.
	// Their intact declarations are still loaded.
	SyntaxErrors []string

	// Revision is the git commit hash of the first directory input, if it
	// lies inside a git checkout.
	Revision string
}

// Load parses every input concurrently, then declares and binds the
// resulting units in input order so that cross-file references resolve
// the same way regardless of scheduling.
func Load(ctx context.Context, opts Options) (*Result, error) {
	if opts.Assembly == "" {
		opts.Assembly = DefaultAssembly
	}
	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = runtime.GOMAXPROCS(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	inputs, revision, err := expand(opts.Paths)
	if err != nil {
		return nil, err
	}

	files := make([]*csharp.File, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for i, in := range inputs {
		g.Go(func() error {
			f, err := load(gctx, in, opts)
			if err != nil {
				return err
			}
			files[i] = f
			logger.Debug("loaded input", "path", in, "types", len(f.Manifest.Types))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := symbols.NewCompilation(opts.Assembly)
	for _, t := range symbols.Builtins() {
		c.Reference(t)
	}

	res := &Result{Compilation: c, Files: inputs, Revision: revision}
	units := make([]*manifest.Unit, len(files))
	for i, f := range files {
		units[i] = f.Manifest.Declare(c)
		if f.HasErrors {
			res.SyntaxErrors = append(res.SyntaxErrors, f.Path)
			logger.Warn("syntax errors in source", "path", f.Path)
		}
	}
	for _, u := range units {
		u.Bind()
	}
	return res, nil
}

// expand turns the input paths into an ordered, de-duplicated list of
// files and URLs.
func expand(paths []string) ([]string, string, error) {
	var out []string
	var revision string
	seen := map[string]bool{}
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, p := range paths {
		if isURL(p) {
			add(p)
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, "", fmt.Errorf("stat input: %w", err)
		}
		if !info.IsDir() {
			if kindOf(p) == "" {
				return nil, "", fmt.Errorf("%s: %w", p, ErrUnsupportedInput)
			}
			add(p)
			continue
		}
		if revision == "" {
			revision = gitRevision(p)
		}
		var found []string
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && skippedDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if kindOf(path) != "" {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, "", fmt.Errorf("walk %s: %w", p, err)
		}
		slices.Sort(found)
		for _, f := range found {
			add(f)
		}
	}
	return out, revision, nil
}

func kindOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cs":
		return "csharp"
	case ".yaml", ".yml":
		return "manifest"
	}
	return ""
}

func isURL(p string) bool {
	return strings.HasPrefix(p, "https://") || strings.HasPrefix(p, "http://")
}

// load reads one input. Manifests are wrapped as syntax-clean files so
// that both kinds flow through the same declare and bind steps.
func load(ctx context.Context, path string, opts Options) (*csharp.File, error) {
	if isURL(path) {
		data, err := fetchManifest(ctx, path, opts.Timeout)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", path, err)
		}
		m, err := manifest.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &csharp.File{Path: path, Manifest: m}, nil
	}

	if kindOf(path) == "manifest" {
		m, err := manifest.Load(path)
		if err != nil {
			return nil, err
		}
		return &csharp.File{Path: path, Manifest: m}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	// Tolerate a UTF-8 byte order mark, common in Visual Studio projects.
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	return csharp.Parse(ctx, path, opts.Assembly, data)
}

func fetchManifest(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// gitRevision returns the commit hash checked out in the git repository
// containing dir, or "" when there is none.
func gitRevision(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		if hash := readHead(filepath.Join(abs, ".git")); hash != "" {
			return hash
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return ""
		}
		abs = parent
	}
}

func readHead(gitDir string) string {
	data, err := os.ReadFile(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return ""
	}

	content := strings.TrimSpace(string(data))

	// Detached HEAD
	if len(content) == 40 && isHex(content) {
		return content
	}

	// e.g. "ref: refs/heads/main"
	if ref, ok := strings.CutPrefix(content, "ref: "); ok {
		data, err := os.ReadFile(filepath.Join(gitDir, filepath.FromSlash(ref)))
		if err != nil {
			return ""
		}
		hash := strings.TrimSpace(string(data))
		if len(hash) >= 40 {
			return hash[:40]
		}
	}

	return ""
}

func isHex(s string) bool {
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
