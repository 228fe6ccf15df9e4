// Package archive unpacks the zipped document bundles the catalog serves for
// full series records.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/Digital-Shane/tvdbxml/internal/xmlx"
)

// Document names inside a full series bundle.
const (
	ActorsDocument  = "actors.xml"
	BannersDocument = "banners.xml"
)

// LanguageDocument names the per-language episode document, e.g. "en.xml".
func LanguageDocument(lang string) string {
	return lang + ".xml"
}

// DocumentSet maps member names, extension included, to their decoded text.
type DocumentSet map[string]string

// Lookup returns the named document or a structural error naming it.
func (d DocumentSet) Lookup(name string) (string, error) {
	text, ok := d[name]
	if !ok {
		return "", &UnpackError{Member: name, Err: errors.New("document not in archive")}
	}
	return text, nil
}

// UnpackError reports an archive that could not be read. It matches
// xmlx.ErrStructure.
type UnpackError struct {
	Member string // empty when the archive itself is unreadable
	Err    error
}

func (e *UnpackError) Error() string {
	if e.Member == "" {
		return fmt.Sprintf("unpack archive: %v", e.Err)
	}
	return fmt.Sprintf("unpack archive member %q: %v", e.Member, e.Err)
}

func (e *UnpackError) Unwrap() error {
	return e.Err
}

func (e *UnpackError) Is(target error) bool {
	return target == xmlx.ErrStructure
}

// Unpack reads every file member of a zip archive as UTF-8 text. Directory
// entries are skipped. Any failure discards the whole set.
func Unpack(data []byte) (DocumentSet, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &UnpackError{Err: err}
	}

	docs := make(DocumentSet, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		text, err := readMember(f)
		if err != nil {
			return nil, &UnpackError{Member: f.Name, Err: err}
		}
		docs[f.Name] = text
	}
	return docs, nil
}

// UnpackReader buffers r and unpacks it.
func UnpackReader(r io.Reader) (DocumentSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &UnpackError{Err: err}
	}
	return Unpack(data)
}

func readMember(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", errors.New("not valid UTF-8")
	}
	text, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), raw)
	if err != nil {
		return "", err
	}
	return string(text), nil
}
