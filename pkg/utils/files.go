package utils

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// SourceExt is the file extension of MicroJava sources.
const SourceExt = ".mj"

// ErrNotSource is returned for files without the SourceExt extension.
var ErrNotSource = errors.New("not a MicroJava source file")

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// ReadSource reads a MicroJava source file and returns its contents and
// absolute path. "-" reads standard input.
func ReadSource(path string) (src string, fullPath string, err error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), "<stdin>", err
	}
	if !strings.EqualFold(filepath.Ext(path), SourceExt) {
		return "", "", fmt.Errorf("%s: %w", path, ErrNotSource)
	}
	fullPath, _, err = GetPathInfo(path)
	if err != nil {
		return "", "", err
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return "", "", err
	}
	return string(data), fullPath, nil
}
