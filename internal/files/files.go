package files

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// SourceExt is the extension of lily source files.
const SourceExt = ".lily"

// Find yields the regular files under root with extension ext, in lexical
// walk order. A walk error panics; use FindErr to handle it.
func Find(root string, ext string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for path, err := range FindErr(root, ext) {
			if err != nil {
				panic(err)
			}
			if !yield(path) {
				return
			}
		}
	}
}

// FindErr is Find with walk errors yielded instead of panicking. Walking
// stops after the first error.
func FindErr(root string, ext string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		stopped := false
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(path) == ext {
				if !yield(path, nil) {
					stopped = true
					return filepath.SkipAll
				}
			}
			return nil
		})
		if err != nil && !stopped {
			yield("", err)
		}
	}
}

// Reloadable tests whether a change to path should trigger a re-check. It
// ignores temporary files from editors like vim and Emacs.
func Reloadable(path string) bool {
	ext := filepath.Ext(path)
	// ignore vim swap files: .swp, .swo, .swn, etc
	if len(ext) == 4 && strings.HasPrefix(ext, ".sw") {
		return false
	}
	// ignore vim and Emacs backup files
	if strings.HasSuffix(ext, "~") {
		return false
	}
	// ignore Emacs autosave and lock files
	base := filepath.Base(path)
	if strings.HasPrefix(base, "#") || strings.HasPrefix(base, ".#") {
		return false
	}
	return true
}
