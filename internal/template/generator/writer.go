package generator

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Writer writes files to the filesystem.
type Writer interface {
	// WriteFile writes content to a file, replacing any existing file.
	WriteFile(path string, content []byte) error

	// CreateDir creates a directory and any necessary parent directories.
	CreateDir(path string) error

	// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool
}

const (
	dirMode  os.FileMode = 0o755
	fileMode os.FileMode = 0o644
)

// FileWriter implements Writer on top of an afero filesystem.
type FileWriter struct {
	fs     afero.Fs
	logger zerolog.Logger
}

// NewFileWriter creates a new FileWriter.
func NewFileWriter(fs afero.Fs, logger zerolog.Logger) *FileWriter {
	return &FileWriter{
		fs:     fs,
		logger: logger,
	}
}

// WriteFile writes content to path with 0644 permissions.
// Creates parent directories if they don't exist.
// Writes atomically using a temporary file and rename.
func (w *FileWriter) WriteFile(path string, content []byte) error {
	w.logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("Writing file")

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := w.CreateDir(dir); err != nil {
			return newGeneratorError(GeneratorWriteFailed,
				"failed to create parent directory",
				path,
				err)
		}
	}

	tempFile := path + ".tmp"
	f, err := w.fs.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return newGeneratorError(GeneratorWriteFailed,
			"failed to create temporary file",
			path,
			err)
	}

	_, err = f.Write(content)
	closeErr := f.Close()

	if err != nil {
		_ = w.fs.Remove(tempFile)
		return newGeneratorError(GeneratorWriteFailed,
			"failed to write file content",
			path,
			err)
	}

	if closeErr != nil {
		_ = w.fs.Remove(tempFile)
		return newGeneratorError(GeneratorWriteFailed,
			"failed to close file",
			path,
			closeErr)
	}

	if err := w.fs.Rename(tempFile, path); err != nil {
		_ = w.fs.Remove(tempFile)
		return newGeneratorError(GeneratorWriteFailed,
			"failed to rename temporary file",
			path,
			err)
	}

	return nil
}

// CreateDir creates a directory and any necessary parent directories.
// Uses 0755 permissions for created directories.
func (w *FileWriter) CreateDir(path string) error {
	if err := w.fs.MkdirAll(path, dirMode); err != nil {
		return newGeneratorError(GeneratorWriteFailed,
			"failed to create directory",
			path,
			err)
	}
	return nil
}

// Exists checks if a file or directory exists at the given path.
func (w *FileWriter) Exists(path string) bool {
	_, err := w.fs.Stat(path)
	return err == nil
}
