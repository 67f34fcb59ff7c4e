package document

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"lion/internal/diagnostic"
)

// DefaultPattern selects XML files at any depth.
const DefaultPattern = "**/*.xml"

// Resolve expands inputs into document files. Each input is reported as
// input-path; inputs that do not exist are reported as file-not-found.
func Resolve(fsys afero.Fs, inputs []string, pattern string, diags *diagnostic.Diagnostics) []string {
	if pattern == "" {
		pattern = DefaultPattern
	}

	var files []string

	for _, input := range inputs {
		diags.Add(diagnostic.EventInputPath, input, "")

		info, err := fsys.Stat(input)
		if err != nil {
			diags.AddCause(diagnostic.EventFileNotFound, input, err)
			continue
		}

		if !info.IsDir() {
			files = append(files, input)
			continue
		}

		found, err := walkDir(fsys, input, pattern)
		if err != nil {
			diags.AddCause(diagnostic.EventFileNotFound, input, err)
		}

		files = append(files, found...)
	}

	return files
}

// Siblings lists the files directly inside dir that match pattern, e.g. "*.xml".
func Siblings(fsys afero.Fs, dir, pattern string) ([]string, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var files []string

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		if matchName(pattern, e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	return files, nil
}

func walkDir(fsys afero.Fs, dir, pattern string) ([]string, error) {
	var files []string

	err := afero.Walk(fsys, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		if matchName(pattern, filepath.ToSlash(rel)) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

// matchName matches case-sensitively first, then against the lower-cased name
// so "STRINGS.XML" is found by "**/*.xml".
func matchName(pattern, name string) bool {
	if ok, _ := doublestar.Match(pattern, name); ok {
		return true
	}

	ok, _ := doublestar.Match(pattern, strings.ToLower(name))

	return ok
}
