// Package decode turns one catalog element into a model entity. Each entity
// kind has a fixed table of recognised tags; anything else is skipped along
// with its subtree.
package decode

import (
	"go.uber.org/zap"

	"github.com/Digital-Shane/tvdbxml/internal/model"
	"github.com/Digital-Shane/tvdbxml/internal/xmlx"
)

// field reads the tag under the cursor into a builder.
type field[B any] func(c *xmlx.Cursor, b *B) error

// fields reads every child of the element under the cursor, dispatching by
// exact tag name. The element's end tag is consumed.
func fields[B any](c *xmlx.Cursor, b *B, table map[string]field[B], log *zap.Logger) error {
	parent := c.Name()
	for {
		ok, err := c.NextChild()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if f, found := table[c.Name()]; found {
			if err := f(c, b); err != nil {
				return err
			}
			continue
		}
		if log != nil {
			log.Debug("Unexpected tag, ignoring", zap.String("parent", parent), zap.String("tag", c.Name()))
		}
		if err := c.Skip(); err != nil {
			return err
		}
	}
}

func intField[B any](set func(*B, int) *B) field[B] {
	return func(c *xmlx.Cursor, b *B) error {
		v, err := c.ReadInt(model.NotPresent)
		if err != nil {
			return err
		}
		set(b, v)
		return nil
	}
}

func longField[B any](set func(*B, int64) *B) field[B] {
	return func(c *xmlx.Cursor, b *B) error {
		v, err := c.ReadLong(model.NotPresent)
		if err != nil {
			return err
		}
		set(b, v)
		return nil
	}
}

func floatField[B any](set func(*B, float32) *B) field[B] {
	return func(c *xmlx.Cursor, b *B) error {
		v, err := c.ReadFloat(model.NotPresent)
		if err != nil {
			return err
		}
		set(b, v)
		return nil
	}
}

func boolField[B any](set func(*B, bool) *B) field[B] {
	return func(c *xmlx.Cursor, b *B) error {
		v, err := c.ReadBool()
		if err != nil {
			return err
		}
		set(b, v)
		return nil
	}
}

func textField[B any](set func(*B, string) *B) field[B] {
	return func(c *xmlx.Cursor, b *B) error {
		v, err := c.ReadText()
		if err != nil {
			return err
		}
		set(b, v)
		return nil
	}
}

func listField[B any](set func(*B, []string) *B) field[B] {
	return func(c *xmlx.Cursor, b *B) error {
		v, err := c.ReadStringArray(xmlx.ListDelimiter)
		if err != nil {
			return err
		}
		set(b, v)
		return nil
	}
}

// dateField leaves the date absent when the text does not parse.
func dateField[B any](set func(*B, model.Date) *B) field[B] {
	return func(c *xmlx.Cursor, b *B) error {
		t, ok, err := c.ReadDate(xmlx.DateLayout)
		if err != nil {
			return err
		}
		if ok {
			set(b, model.NewDate(t))
		}
		return nil
	}
}
