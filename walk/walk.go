// Package walk collects candidate files under a root directory and runs
// a per-file function over them with a bounded worker pool. The rewrite
// engine itself is pure, so files can be processed in parallel; results
// are still reported in collection order.
package walk

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	ignore "github.com/sabhiram/go-gitignore"
)

// Result describes the outcome of processing one file.
type Result struct {
	Path    string
	Changed bool
	Err     error
}

// Collect returns the files under root whose names end in one of exts,
// sorted by path. Directories named in skipDirs are pruned, as is
// anything matched by a .gitignore at the root. Unreadable entries
// below the root are skipped silently; failing to enumerate the root
// itself is an error.
func Collect(root string, exts []string, skipDirs []string) ([]string, error) {
	skip := make(map[string]struct{}, len(skipDirs))
	for _, d := range skipDirs {
		skip[d] = struct{}{}
	}
	gi := loadGitignore(root)

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			if _, s := skip[d.Name()]; s {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}
		for _, ext := range exts {
			if strings.HasSuffix(d.Name(), ext) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func loadGitignore(root string) *ignore.GitIgnore {
	path := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return gi
}

// Process runs fn over files with up to jobs parallel workers and calls
// report once per file, in collection order, with a running 1-based
// count. fn must be safe for concurrent use; report is always called
// from the Process goroutine.
func Process(files []string, jobs int, fn func(path string) Result, report func(done int, r Result)) {
	if jobs < 1 {
		jobs = 1
	}

	done := make([]chan Result, len(files))
	for i := range done {
		done[i] = make(chan Result, 1)
	}
	work := make(chan int, len(files))
	for i := range files {
		work <- i
	}
	close(work)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				done[i] <- fn(files[i])
			}
		}()
	}

	for i := range done {
		report(i+1, <-done[i])
	}
	wg.Wait()
}
