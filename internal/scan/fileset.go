package scan

import (
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nbtools/nbscan/internal/errors"
)

// DefaultSubmittedRoot is the directory searched by submitted filters when
// no other root is configured. nbgrader collects student work there.
const DefaultSubmittedRoot = "submitted"

// FileSetOptions describes where to look for notebooks.
type FileSetOptions struct {
	// Files are explicit notebook paths. Every one of them must exist.
	Files []string

	// Dirs are roots searched recursively for .ipynb files.
	Dirs []string

	// Submitted filters the submitted tree down to paths containing any of
	// these project or student names.
	Submitted []string

	// SubmittedRoot overrides the directory walked for Submitted filters.
	SubmittedRoot string

	// Random, when positive, samples that many files from the final set.
	Random int

	// Rand supplies the sampling source. Nil means the shared global source.
	Rand *rand.Rand
}

// BuildFileSet returns the sorted, de-duplicated list of notebooks to scan.
// It fails if any explicit file is missing or the final set is empty.
func BuildFileSet(opts FileSetOptions) ([]string, error) {
	set := make(map[string]struct{})

	var missing []error
	for _, fn := range opts.Files {
		stat, err := os.Stat(fn)
		if err != nil || stat.IsDir() {
			missing = append(missing, errors.NotFound("no such file: "+fn))
			continue
		}
		set[fn] = struct{}{}
	}
	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}

	for _, dir := range opts.Dirs {
		if err := addNotebooksUnder(set, dir, nil); err != nil {
			return nil, err
		}
	}

	if len(opts.Submitted) > 0 {
		root := opts.SubmittedRoot
		if root == "" {
			root = DefaultSubmittedRoot
		}
		if err := addNotebooksUnder(set, root, opts.Submitted); err != nil {
			return nil, err
		}
	}

	if len(set) == 0 {
		return nil, errors.ErrNoFiles
	}

	files := make([]string, 0, len(set))
	for fn := range set {
		files = append(files, fn)
	}
	sort.Strings(files)

	if opts.Random > 0 {
		var err error
		files, err = sampleFiles(files, opts.Random, opts.Rand)
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// addNotebooksUnder walks dir recursively, adding .ipynb files to set.
// Dot-directories such as .ipynb_checkpoints and .sync are pruned. When
// projects is non-empty, only paths containing one of its entries survive.
func addNotebooksUnder(set map[string]struct{}, dir string, projects []string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// A vanished or unreadable subtree is skipped, but a missing
			// root is a caller mistake.
			if path == dir {
				return errors.Wrap(err, "cannot search directory")
			}
			return nil
		}

		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(d.Name(), ".ipynb") || strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		if len(projects) > 0 && !pathContainsAny(filepath.Dir(path), projects) {
			return nil
		}

		set[path] = struct{}{}
		return nil
	})
}

// pathContainsAny reports whether any of the names occurs in path.
func pathContainsAny(path string, names []string) bool {
	for _, name := range names {
		if strings.Contains(path, name) {
			return true
		}
	}
	return false
}

// sampleFiles picks n files without replacement and returns them sorted.
func sampleFiles(files []string, n int, src *rand.Rand) ([]string, error) {
	if n > len(files) {
		return nil, errors.New("cannot sample %d files from a set of %d", n, len(files))
	}

	shuffled := make([]string, len(files))
	copy(shuffled, files)

	swap := func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] }
	if src != nil {
		src.Shuffle(len(shuffled), swap)
	} else {
		rand.Shuffle(len(shuffled), swap)
	}

	sample := shuffled[:n]
	sort.Strings(sample)
	return sample, nil
}
