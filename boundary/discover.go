package boundary

import (
	"os"
	"path/filepath"
	"runtime"
)

// EnvLibraryPath names the environment variable that overrides library
// discovery.
const EnvLibraryPath = "PDFSTRINGS_LIB"

// LibraryName returns the platform file name of the native engine.
func LibraryName() string {
	switch runtime.GOOS {
	case "darwin", "ios":
		return "libpdf_strings_ffi.dylib"
	case "windows":
		return "pdf_strings_ffi.dll"
	default:
		return "libpdf_strings_ffi.so"
	}
}

// FindLibrary returns the path of the native engine. The environment variable
// wins; otherwise the working directory, a cargo release build and the
// executable's directory are searched. If nothing is found the bare library
// name is returned so the system loader can search its own paths.
func FindLibrary() string {
	if path := os.Getenv(EnvLibraryPath); path != "" {
		return path
	}

	name := LibraryName()
	searchPaths := []string{
		name,
		filepath.Join("target", "release", name),
		filepath.Join("lib", name),
	}
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		searchPaths = append(searchPaths,
			filepath.Join(execDir, name),
			filepath.Join(execDir, "..", "lib", name),
		)
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			if abs, err := filepath.Abs(path); err == nil {
				return abs
			}
			return path
		}
	}
	return name
}
