// Package config holds the constants every stage of the pipeline shares:
// recognized source extensions and the names of the few intrinsics the
// transformer/analyzer treat specially (spec.md §4.3, §4.5).
package config

// Version identifies this build. Set at release time by -ldflags.
var Version = "0.1.0"

const SourceFileExt = ".slt"

// SourceFileExtensions are the recognized source file extensions
// (spec.md §6: ".lun"/".lr"/".slt" interchangeably name a unit).
var SourceFileExtensions = []string{".slt", ".lun", ".lr"}

// TrimSourceExt removes any recognized source extension from a filename.
// Returns the original string if no extension matches.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt returns true if the path ends with any recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// SetMetatableFuncName is the one intrinsic the transformer and analyzer
// both special-case by name (spec.md §4.3's Library::SetMetatable).
const SetMetatableFuncName = "setmetatable"
