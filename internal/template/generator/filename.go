package generator

import (
	"fmt"
	"path/filepath"
	"strings"
)

// OutputFileName derives the output file name from a template source path:
// the base name with its final extension removed. "README.md.tmpl" becomes
// "README.md"; a name without an extension is kept as is.
func OutputFileName(sourcePath string) string {
	base := filepath.Base(sourcePath)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// ResolveOutputDir returns outputPath when it is absolute and joins it onto
// configDir otherwise. An empty outputPath resolves to configDir.
func ResolveOutputDir(configDir, outputPath string) string {
	if filepath.IsAbs(outputPath) {
		return filepath.Clean(outputPath)
	}
	return filepath.Join(configDir, outputPath)
}

// OutputPath returns the full path a template is written to.
func OutputPath(configDir, sourcePath, outputPath string) (string, error) {
	name := OutputFileName(sourcePath)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", newGeneratorError(GeneratorPathError,
			fmt.Sprintf("cannot derive output file name from %q", sourcePath), "", nil)
	}
	return filepath.Join(ResolveOutputDir(configDir, outputPath), name), nil
}
