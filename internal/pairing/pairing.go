// Package pairing matches input files with expected-output files by base name.
package pairing

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ziuteczek/Turbo-Tester-3000/internal/failure"
)

// Pair links one input file with its expected-output file.
type Pair struct {
	Index        int
	Name         string
	InputPath    string
	ExpectedPath string
}

// Discover lists both directories and pairs their files.
func Discover(inDir, inExt, outDir, outExt string) ([]Pair, error) {
	inputs, err := ListFiles(inDir, inExt)
	if err != nil {
		return nil, err
	}
	outputs, err := ListFiles(outDir, outExt)
	if err != nil {
		return nil, err
	}
	return Pairs(inputs, outputs)
}

// ListFiles returns the regular files directly inside dir whose extension is
// ext, sorted by file name. Subdirectories are not scanned.
func ListFiles(dir, ext string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, failure.New(failure.DirectoryNotFound, "Directory '%s' does not exist.", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, failure.Wrap(failure.DirectoryNotFound, err, "read directory '%s'", dir)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if filepath.Ext(name) != ext || baseName(name) == "" {
			continue
		}

		path := filepath.Join(dir, name)
		// Stat follows symlinks; a link to a regular file counts.
		fi, err := os.Stat(path)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		files = append(files, path)
	}

	sort.Slice(files, func(i, j int) bool {
		return filepath.Base(files[i]) < filepath.Base(files[j])
	})

	return files, nil
}

// Pairs zips the sorted input and output files positionally. Every position
// is validated before anything is returned.
func Pairs(inputs, outputs []string) ([]Pair, error) {
	if len(inputs) != len(outputs) {
		return nil, failure.New(failure.CountMismatch, "The number of input and output files does not match.")
	}

	pairs := make([]Pair, len(inputs))
	for idx := range inputs {
		inName := baseName(filepath.Base(inputs[idx]))
		outName := baseName(filepath.Base(outputs[idx]))
		if inName != outName {
			return nil, failure.New(failure.NameMismatch, "Filename mismatch: %s vs %s", filepath.Base(inputs[idx]), filepath.Base(outputs[idx]))
		}

		pairs[idx] = Pair{
			Index:        idx,
			Name:         inName,
			InputPath:    inputs[idx],
			ExpectedPath: outputs[idx],
		}
	}

	return pairs, nil
}

func baseName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
