package device

import (
	"os"
	"path/filepath"
	"regexp"
)

var ppIncludeRe = regexp.MustCompile(`(?im)^#pragma\s+use\s+"([^"]+)"$`)

type Source interface {
	Contents() ([]byte, error)
}

type SourceBuf string

func (s SourceBuf) Contents() ([]byte, error) {
	return []byte(s), nil
}

type SourceFile struct {
	Filename string
}

func (s SourceFile) Contents() ([]byte, error) {
	return os.ReadFile(s.Filename)
}

// Includes recursively resolves the files referred to by `#pragma use`
// directives.
//
// Dependencies precede the files that use them and the argument files are
// included in the returned list.
func Includes(filenames ...string) ([]SourceFile, error) {
	return includeRecursive(filenames, []SourceFile{}, map[string]bool{})
}

// SourceFiles converts a list of files to a list of sources.
func SourceFiles(files ...SourceFile) []Source {
	sources := make([]Source, len(files))
	for i, f := range files {
		sources[i] = f
	}
	return sources
}

// includeRecursive appends the files and their dependencies to sources.
// visiting holds every file that is included or is being resolved further up
// the stack, which stops cycles.
func includeRecursive(filenames []string, sources []SourceFile, visiting map[string]bool) ([]SourceFile, error) {
	for _, filename := range filenames {
		absFilename, err := filepath.Abs(filename)
		if err != nil {
			return nil, err
		}
		if visiting[absFilename] {
			continue
		}
		visiting[absFilename] = true

		currentFile := SourceFile{Filename: absFilename}
		contents, err := currentFile.Contents()
		if err != nil {
			return nil, err
		}

		includeMatches := ppIncludeRe.FindAllSubmatch(contents, -1)
		includes := make([]string, 0, len(includeMatches))
		for _, submatch := range includeMatches {
			includedFile := string(submatch[1])
			if !filepath.IsAbs(includedFile) {
				includedFile = filepath.Join(filepath.Dir(absFilename), includedFile)
			} else {
				includedFile = filepath.Clean(includedFile)
			}
			includes = append(includes, includedFile)
		}

		sources, err = includeRecursive(includes, sources, visiting)
		if err != nil {
			return nil, err
		}
		sources = append(sources, currentFile)
	}
	return sources, nil
}
