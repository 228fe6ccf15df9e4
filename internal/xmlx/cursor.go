// Package xmlx is a small forward-only cursor over an XML token stream with
// lenient scalar readers. Structural problems abort the read; bad scalar
// content falls back to the caller's default.
package xmlx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Cursor walks an XML document one start tag at a time. A Cursor is not safe
// for concurrent use.
type Cursor struct {
	dec   *xml.Decoder
	start xml.StartElement
}

// Open returns a cursor positioned on the root element of text.
func Open(text string) (*Cursor, error) {
	return NewCursor(strings.NewReader(text))
}

// NewCursor returns a cursor positioned on the root element read from r.
// Non UTF-8 documents are converted using the encoding named in their XML
// declaration.
func NewCursor(r io.Reader) (*Cursor, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	dec.CharsetReader = charset.NewReaderLabel

	c := &Cursor{dec: dec}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, structural("open", "", errors.New("no root element"))
		}
		if err != nil {
			return nil, structural("open", "", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			c.start = t
			return c, nil
		case xml.EndElement:
			return nil, structural("open", t.Name.Local, errors.New("end tag before root element"))
		}
	}
}

// Name is the local name of the start tag the cursor is on.
func (c *Cursor) Name() string {
	return c.start.Name.Local
}

// Require fails unless the cursor is on a start tag called name.
func (c *Cursor) Require(name string) error {
	if c.start.Name.Local != name {
		return structural("require", c.start.Name.Local, fmt.Errorf("expected <%s>", name))
	}
	return nil
}

// NextChild advances to the next child start tag of the current element and
// reports true, or consumes the element's end tag and reports false.
func (c *Cursor) NextChild() (bool, error) {
	for {
		tok, err := c.token("next child")
		if err != nil {
			return false, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			c.start = t
			return true, nil
		case xml.EndElement:
			return false, nil
		}
	}
}

// Skip consumes the current element and all of its children.
func (c *Cursor) Skip() error {
	depth := 1
	for depth > 0 {
		tok, err := c.token("skip")
		if err != nil {
			return err
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return nil
}

// text consumes the current element and returns its character data. ok is
// false when the element had no text child at all.
func (c *Cursor) text(op string) (value string, ok bool, err error) {
	tag := c.Name()
	var sb strings.Builder
	for {
		tok, err := c.token(op)
		if err != nil {
			return "", false, err
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
			ok = true
		case xml.StartElement:
			return "", false, structural(op, tag, fmt.Errorf("unexpected element <%s>", t.Name.Local))
		case xml.EndElement:
			return sb.String(), ok, nil
		}
	}
}

func (c *Cursor) token(op string) (xml.Token, error) {
	tok, err := c.dec.Token()
	if err == io.EOF {
		return nil, structural(op, c.Name(), io.ErrUnexpectedEOF)
	}
	if err != nil {
		return nil, structural(op, c.Name(), err)
	}
	return tok, nil
}
