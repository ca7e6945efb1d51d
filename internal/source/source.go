package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// DefaultPath is opened when no file argument is given.
const DefaultPath = "tests/bag-small"

var ErrNotRegular = errors.New("source: not a regular file")

// LoadError wraps a failure to open or read the input file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("source: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// File is the loaded input. Data is never modified after Load returns.
type File struct {
	Path string
	Name string
	Data []byte
}

func (f *File) Len() int {
	return len(f.Data)
}

// ResolvePath picks the first argument, or DefaultPath when there is none.
func ResolvePath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return DefaultPath
}

// StdinPath reads the input from standard input.
const StdinPath = "-"

// Load reads the whole file into memory.
func Load(path string) (*File, error) {
	if path == StdinPath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, &LoadError{Path: "stdin", Err: err}
		}
		return &File{Path: path, Name: "stdin", Data: data}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &LoadError{Path: path, Err: ErrNotRegular}
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("file loaded")

	return &File{
		Path: path,
		Name: filepath.Base(path),
		Data: data,
	}, nil
}
