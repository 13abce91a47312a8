// Package fileutils provides common file operations used throughout the application.
package fileutils

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"fjacquet/fire-report/internal/reporterror"
)

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// RequireFile returns a *reporterror.FileError unless filePath is a regular
// file. A missing file wraps fs.ErrNotExist.
func RequireFile(filePath string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return &reporterror.FileError{Op: "stat", Path: filePath, Err: err}
	}
	if info.IsDir() {
		return &reporterror.FileError{Op: "stat", Path: filePath, Err: fmt.Errorf("is a directory: %w", fs.ErrInvalid)}
	}
	return nil
}

// EnsureDirectoryExists creates a directory and its parents if needed
func EnsureDirectoryExists(dirPath string) error {
	if dirPath == "" || dirPath == "." || DirectoryExists(dirPath) {
		return nil
	}
	if err := os.MkdirAll(dirPath, 0750); err != nil {
		return &reporterror.FileError{Op: "mkdir", Path: dirPath, Err: err}
	}
	return nil
}

// EnsureParentDir creates the directory that will hold filePath.
func EnsureParentDir(filePath string) error {
	return EnsureDirectoryExists(filepath.Dir(filePath))
}

// CreateWith creates or truncates filePath, creating parent directories, and
// hands the file to write. The file is closed before CreateWith returns;
// errors from write are returned as is, file system errors as
// *reporterror.FileError.
func CreateWith(filePath string, write func(w io.Writer) error) (err error) {
	if err := EnsureParentDir(filePath); err != nil {
		return err
	}

	f, err := os.Create(filePath)
	if err != nil {
		return &reporterror.FileError{Op: "create", Path: filePath, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &reporterror.FileError{Op: "close", Path: filePath, Err: cerr}
		}
	}()

	return write(f)
}
