package codec

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// IsImageFile reports whether a file name carries one of the recognized
// image extensions (.png, .jpg, .jpeg, .bmp), matched case-insensitively.
func IsImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".bmp":
		return true
	}
	return false
}

// ListImages collects the image files directly inside a directory.
//
// Arguments:
// - dir: Directory to enumerate. Subdirectories are not descended into.
//
// Returns:
// - []string: Full paths of the recognized image files, sorted by name.
// - error: Error if the directory cannot be read.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading input directory %s", dir)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !IsImageFile(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	sort.Strings(files)
	return files, nil
}
