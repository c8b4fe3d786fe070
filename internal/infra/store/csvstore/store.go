package csvstore

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
)

// StorageError reports an unreadable or malformed collection file. It is
// fatal for the current action only; the process keeps serving.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("collection %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Store gives access to the two CSV-backed collections. Paths are fixed
// at construction and read-only afterwards.
type Store struct {
	clientsPath  string
	productsPath string
}

func New(clientsPath, productsPath string) *Store {
	return &Store{clientsPath: clientsPath, productsPath: productsPath}
}

// readRows returns the data rows of a collection file. An absent or
// empty file is an empty collection, not an error.
func readRows(path string, columns []string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Path: path, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, &StorageError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, nil
	}
	if !slices.Equal(records[0], columns) {
		return nil, &StorageError{Path: path, Err: fmt.Errorf("unexpected header %v, want %v", records[0], columns)}
	}
	return records[1:], nil
}

// appendRow rewrites the whole file: load-all, append, write-all. That
// is how the original tool saves, and it re-validates the file on every
// write. No locking; the store is scoped to one interactive user.
func appendRow(path string, columns []string, row []string) error {
	rows, err := readRows(path, columns)
	if err != nil {
		return err
	}

	all := make([][]string, 0, len(rows)+2)
	all = append(all, columns)
	all = append(all, rows...)
	all = append(all, row)

	var buf bytes.Buffer
	if err := csv.NewWriter(&buf).WriteAll(all); err != nil {
		return &StorageError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &StorageError{Path: path, Err: err}
	}
	return nil
}
