// Package source implements the file-source collaborator the core consumes
// (spec 4.I): it walks a file or directory and produces the (name, content)
// pairs timetrack.Run parses. None of this package is part of the core —
// the core never opens a file or calls filepath.Walk itself.
package source

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lhohan/simple-time-tracker-sub000/internal/timetrack"
)

// DirSource walks Root (a single file or a directory) and yields every
// matching file's content, sorted by path so runs are deterministic
// regardless of the filesystem's own directory-entry ordering.
type DirSource struct {
	Root string
	// Ext restricts matched files by extension (including the leading dot,
	// e.g. ".md"). Empty means every regular file is matched.
	Ext string

	failed []string // paths that failed to read on the last Files() call
}

// NewDirSource returns a DirSource rooted at root matching files with ext
// (pass "" to match every file).
func NewDirSource(root, ext string) *DirSource {
	return &DirSource{Root: root, Ext: ext}
}

// Files implements timetrack.FileSource. A file that cannot be read is
// left out of the result and its path is recorded for ReadFailures rather
// than aborting the whole walk, matching the core's "errors accumulate"
// policy for the rest of the pipeline.
func (s *DirSource) Files() ([]timetrack.FileContent, error) {
	s.failed = nil
	info, err := os.Stat(s.Root)
	if err != nil {
		return nil, err
	}

	var paths []string
	if !info.IsDir() {
		paths = []string{s.Root}
	} else {
		err = filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if s.Ext != "" && !strings.EqualFold(filepath.Ext(path), s.Ext) {
				return nil
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(paths)

	out := make([]timetrack.FileContent, 0, len(paths))
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			s.failed = append(s.failed, p)
			continue
		}
		out = append(out, timetrack.FileContent{Name: p, Content: string(b)})
	}
	return out, nil
}

// ReadFailures returns the paths that could not be read during the most
// recent Files() call. The caller is expected to turn each into a
// timetrack.ErrorReading and merge it into the run's error set via
// Accumulator.AddError, since the core itself never touches the filesystem.
func (s *DirSource) ReadFailures() []string { return s.failed }
