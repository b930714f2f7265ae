package document

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFileName is returned by Save when the document is untitled.
	ErrNoFileName = errors.New("no file name set")
	// ErrEncoding is returned by Open for input that is not valid UTF-8.
	ErrEncoding = errors.New("file is not valid UTF-8")
)

// IOError reports a failed read or write of the document's file.
// IOError описывает ошибку чтения или записи файла.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsIOFailure reports whether err came from reading or writing a file.
func IsIOFailure(err error) bool {
	var ioe *IOError
	return errors.As(err, &ioe)
}
