package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/adhocteam/lily/internal/diagnostics"
	"github.com/adhocteam/lily/internal/files"
	"github.com/adhocteam/lily/internal/source"
)

type checked struct {
	file *source.File
	list diagnostics.List
}

// Check lexes root, a source file or a directory of them, and prints every
// diagnostic found. Warnings are printed but only errors fail the check.
func Check(w io.Writer, root string) error {
	logger := slog.Default()
	logger.Info("Checking", "root", root)

	paths, err := sourcePaths(root)
	if err != nil {
		return err
	}

	results := make([]checked, len(paths))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			f, list, err := checkFile(path)
			if err != nil {
				return err
			}
			results[i] = checked{f, list}
			logger.Debug("Checked", "file", path, "diagnostics", len(list))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	bad := 0
	for _, r := range results {
		if r.list.HasErrors() {
			bad++
		}
		if err := diagnostics.Fprint(w, r.file, r.list); err != nil {
			return fmt.Errorf("printing diagnostics: %w", err)
		}
	}
	logger.Info("Checked", "root", root, "files", len(paths), "failed", bad)
	if bad > 0 {
		return fmt.Errorf("%d of %d files have errors", bad, len(paths))
	}
	return nil
}

func checkFile(path string) (*source.File, diagnostics.List, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading file: %w", err)
	}
	f := source.NewFile(path, string(text))
	return f, diagnostics.Check(f), nil
}

// sourcePaths expands root into the source files to check.
func sourcePaths(root string) ([]string, error) {
	fi, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("checking %q: %w", root, err)
	}
	if !fi.IsDir() {
		return []string{root}, nil
	}
	var paths []string
	for path, err := range files.FindErr(root, files.SourceExt) {
		if err != nil {
			return nil, fmt.Errorf("walking %q: %w", root, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
