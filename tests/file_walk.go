package tests

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type walkFunc func(string) error

// Walk calls wf with every non-test go file of the project, skipping
// the excluded directories.
func Walk(t *testing.T, baseDir string, excludes []string, wf walkFunc) {
	baseDir = filepath.Join("..", baseDir)

	err := filepath.Walk(baseDir, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(filepath.ToSlash(path), "../")
		if f.IsDir() {
			if strings.HasPrefix(f.Name(), ".") && f.Name() != "." && f.Name() != ".." {
				return filepath.SkipDir
			}
			// The retrieval pack and other underscored directories are not part of the module.
			if strings.HasPrefix(f.Name(), "_") {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		for _, exclude := range excludes {
			if strings.HasPrefix(rel, exclude) {
				return nil
			}
		}

		return wf(path)
	})

	if err != nil {
		t.Fatal(err)
	}
}

// ReadFile reads code file from disk.
func ReadFile(path string) []string {
	codeBytes, err := ioutil.ReadFile(path)
	if err != nil {
		panic(err)
	}

	return strings.Split(string(codeBytes), "\n")
}
