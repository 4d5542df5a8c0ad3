package internal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Format identifies an on-disk encoding of the expense list.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Codec converts between records and one on-disk format
type Codec interface {
	Decode(r io.Reader) ([]Record, error)
	Encode(w io.Writer, records []Record) error
}

// codecs is the registry of available formats
var codecs = map[Format]Codec{}

// RegisterCodec registers a codec for the given format
func RegisterCodec(format Format, c Codec) {
	codecs[format] = c
}

// GetCodec returns the codec for the given format
func GetCodec(format Format) (Codec, error) {
	c, ok := codecs[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnsupportedFormat, format, AvailableFormats())
	}
	return c, nil
}

// AvailableFormats returns the registered format names, sorted
func AvailableFormats() []string {
	var names []string
	for f := range codecs {
		names = append(names, string(f))
	}
	slices.Sort(names)
	return names
}

// ParseFormat validates a format name such as "csv" or "json".
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := codecs[f]; !ok {
		return "", fmt.Errorf("%w: %q (available: %v)", ErrUnsupportedFormat, name, AvailableFormats())
	}
	return f, nil
}

// FormatFromPath picks a format from the file extension.
// Example: "expenses.CSV" → FormatCSV
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no file extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Load reads the records stored at path into a new Store.
// A missing file yields an empty Store.
func Load(path string, format Format) (*Store, error) {
	c, err := GetCodec(format)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewStore(), nil
	}
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	records, err := c.Decode(f)
	if err != nil {
		var mre *MalformedRecordError
		if errors.As(err, &mre) {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	store := NewStore()
	for i, r := range records {
		if _, err := store.Add(r.Amount, r.Category, r.Date); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, &MalformedRecordError{Index: i, Err: err})
		}
	}
	return store, nil
}

// Save writes every record in store to path, replacing any existing file.
// The data is written to a temporary file first and renamed into place.
// An existing file keeps its permissions; a new one is created 0600.
func Save(path string, format Format, store *Store) error {
	c, err := GetCodec(format)
	if err != nil {
		return err
	}

	perm := os.FileMode(0o600)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if err := c.Encode(tmp, store.All()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		if errors.Is(err, ErrUnencodable) {
			return fmt.Errorf("saving %s: %w", path, err)
		}
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return &IOError{Op: "chmod", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
