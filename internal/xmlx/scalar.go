package xmlx

import (
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the catalog's date format.
	DateLayout = "2006-01-02"
	// ListDelimiter separates values in list fields such as "|Drama|Comedy|".
	ListDelimiter = "|"
)

// ReadInt reads the current element as an int, returning def when the text
// is missing or not a number.
func (c *Cursor) ReadInt(def int) (int, error) {
	s, _, err := c.text("read int")
	if err != nil {
		return def, err
	}
	v, perr := strconv.Atoi(strings.TrimSpace(s))
	if perr != nil {
		return def, nil
	}
	return v, nil
}

// ReadLong reads the current element as an int64, returning def on bad content.
func (c *Cursor) ReadLong(def int64) (int64, error) {
	s, _, err := c.text("read long")
	if err != nil {
		return def, err
	}
	v, perr := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if perr != nil {
		return def, nil
	}
	return v, nil
}

// ReadFloat reads the current element as a float32, returning def on bad content.
func (c *Cursor) ReadFloat(def float32) (float32, error) {
	s, _, err := c.text("read float")
	if err != nil {
		return def, err
	}
	v, perr := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if perr != nil {
		return def, nil
	}
	return float32(v), nil
}

// ReadBool is true only for the exact text "true".
func (c *Cursor) ReadBool() (bool, error) {
	s, _, err := c.text("read bool")
	if err != nil {
		return false, err
	}
	return s == "true", nil
}

// ReadText returns the element text. An element without text yields "".
func (c *Cursor) ReadText() (string, error) {
	s, _, err := c.text("read text")
	return s, err
}

// ReadStringArray splits the element text on delim. Empty segments are
// dropped and the result is never nil.
func (c *Cursor) ReadStringArray(delim string) ([]string, error) {
	s, ok, err := c.text("read list")
	if err != nil {
		return []string{}, err
	}
	if !ok {
		return []string{}, nil
	}
	return SplitList(s, delim), nil
}

// ReadDate parses the element text with layout. ok is false when the text is
// missing or does not match.
func (c *Cursor) ReadDate(layout string) (t time.Time, ok bool, err error) {
	s, has, err := c.text("read date")
	if err != nil || !has {
		return time.Time{}, false, err
	}
	parsed, perr := time.Parse(layout, strings.TrimSpace(s))
	if perr != nil {
		return time.Time{}, false, nil
	}
	return parsed, true, nil
}

// SplitList splits s on delim, trimming each value and dropping empty ones.
func SplitList(s, delim string) []string {
	parts := strings.Split(s, delim)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
