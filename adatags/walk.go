package adatags

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileResult holds the outcome of tagging one file in a WalkDir call.
type FileResult struct {
	Path string
	Tags []Tag
	Err  error
}

// WalkDir walks root sequentially, running FindTags over every file
// whose extension is .adb, .ads or .Ada (case-sensitive on the last
// one, matching the ctags extension table this module's kind/letter
// table is grounded on), and returns one FileResult per file. Each
// file's tags are stamped with its path via WithFileName; opts are
// applied after that, so callers can still override WithFileName.
func WalkDir(root string, opts ...Option) ([]FileResult, error) {
	var files []string
	err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if isAdaSourceFile(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("adatags: walk %s: %w", root, err)
	}

	results := make([]FileResult, 0, len(files))
	for _, path := range files {
		results = append(results, tagFile(path, opts))
	}
	return results, nil
}

func isAdaSourceFile(path string) bool {
	switch filepath.Ext(path) {
	case ".adb", ".ads", ".Ada":
		return true
	}
	return false
}

func tagFile(path string, opts []Option) FileResult {
	f, err := os.Open(path)
	if err != nil {
		return FileResult{Path: path, Err: fmt.Errorf("adatags: open %s: %w", path, err)}
	}
	defer f.Close()

	fileOpts := append([]Option{WithFileName(path)}, opts...)
	tags, err := FindTags(NewLineReader(f), fileOpts...)
	if err != nil {
		return FileResult{Path: path, Tags: tags, Err: fmt.Errorf("adatags: %s: %w", path, err)}
	}
	return FileResult{Path: path, Tags: tags}
}
