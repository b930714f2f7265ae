package document

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"voider/internal/log"
	"voider/internal/syntax"
)

// Open reads path into a new clean document, detecting its language from the
// file name. Read failures are returned as *IOError; content that is not
// valid UTF-8 is rejected with ErrEncoding rather than loaded damaged.
//
// Open читает файл и создаёт документ.
func Open(path string, reg *syntax.Registry, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user
	if err != nil {
		log.ErrorErr(log.CatDoc, "open failed", err, "path", path)
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}

	text, err := decode(data)
	if err != nil {
		log.Warn(log.CatDoc, "rejected file encoding", "path", path, "error", err)
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	d := FromText(text, path, reg, opts...)
	log.Info(log.CatDoc, "opened", "path", path, "rows", d.RowCount(), "language", d.Language())
	return d, nil
}

// decode validates data as UTF-8, honouring a leading byte order mark, and
// normalises CRLF line endings.
func decode(data []byte) (string, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(encoding.UTF8Validator), data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return strings.ReplaceAll(string(out), "\r\n", "\n"), nil
}

// Save writes every row joined by a single newline to the document's file.
// The dirty flag is cleared only when the write succeeds.
//
// Save сохраняет документ в файл.
func (d *Document) Save() error {
	if d.fileName == "" {
		return ErrNoFileName
	}
	if err := os.WriteFile(d.fileName, []byte(d.Text()), 0o644); err != nil { //nolint:gosec // G306: edited files keep normal permissions
		log.ErrorErr(log.CatDoc, "save failed", err, "path", d.fileName)
		return &IOError{Op: "save", Path: d.fileName, Err: err}
	}
	d.dirty = false
	log.Info(log.CatDoc, "saved", "path", d.fileName, "rows", len(d.lines))
	return nil
}

// SaveAs sets the file name, re-detecting the language, and saves.
func (d *Document) SaveAs(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return ErrNoFileName
	}
	d.SetFileName(path)
	return d.Save()
}
