// Package model holds the immutable catalog records and the builders used to
// assemble them while a document is decoded.
//
// Numbers missing from a document are NotPresent. Strings use Text so that a
// missing tag, an empty tag, and a tag with a value stay distinguishable.
package model

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// NotPresent marks numeric fields absent from the source document.
const NotPresent = -1

// BaseImageURL is prepended to every relative image path in the catalog.
const BaseImageURL = "http://thetvdb.com/banners/"

// Item is the common view used to render any record in a list.
type Item interface {
	ImageURL() string
	TitleText() string
	DescText() string
}

// Text is a string that may be absent from the source document. The zero
// value is absent; Text{Valid: true} is present but empty.
type Text struct {
	Value string
	Valid bool
}

// NewText returns a present Text.
func NewText(s string) Text {
	return Text{Value: s, Valid: true}
}

// String returns the value, or "" when absent.
func (t Text) String() string {
	return t.Value
}

func (t Text) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.Value)
}

func (t *Text) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*t = Text{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = NewText(s)
	return nil
}

// Date is a calendar day that may be missing or unparseable upstream.
type Date struct {
	Time  time.Time
	Valid bool
}

// NewDate returns a valid Date.
func NewDate(t time.Time) Date {
	return Date{Time: t, Valid: true}
}

const dateLayout = "2006-01-02"

func (d Date) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	*d = NewDate(t)
	return nil
}

// ImageURL turns a catalog image path into an absolute URL. Paths that are
// already absolute are kept, and an empty path stays present but empty.
func ImageURL(path string) Text {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return NewText(path)
	}
	return NewText(BaseImageURL + strings.TrimPrefix(path, "/"))
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
