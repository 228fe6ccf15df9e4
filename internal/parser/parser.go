// Package parser reads whole catalog documents, or the document sets unpacked
// from a series archive, into entity lists.
package parser

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Digital-Shane/tvdbxml/internal/archive"
	"github.com/Digital-Shane/tvdbxml/internal/xmlx"
)

// AllSeasons disables season filtering.
const AllSeasons = -1

// ErrDocumentSetUnsupported is returned by parsers whose documents are never
// shipped inside an archive.
var ErrDocumentSetUnsupported = fmt.Errorf("%w: document sets not supported", xmlx.ErrStructure)

// ListParser reads a list of entities from a single document or from the
// relevant member of a document set.
type ListParser[T any] interface {
	ParseDocument(text string) ([]T, error)
	ParseDocumentSet(docs archive.DocumentSet) ([]T, error)
}

// RecordParser reads a single entity from a one-record document.
type RecordParser[T any] interface {
	ParseRecord(text string) (T, error)
}

// Element names used by the catalog.
const (
	dataRoot    = "Data"
	bannersRoot = "Banners"
	actorsRoot  = "Actors"

	seriesElem  = "Series"
	episodeElem = "Episode"
	bannerElem  = "Banner"
	actorElem   = "Actor"
)

// readList opens text, requires root and hands each child element to read.
// Other children are skipped. read reports keep=false to filter an entity.
func readList[T any](text, root, child string, log *zap.Logger, read func(*xmlx.Cursor) (v T, keep bool, err error)) ([]T, error) {
	c, err := xmlx.Open(text)
	if err != nil {
		return nil, err
	}
	if err := c.Require(root); err != nil {
		return nil, err
	}

	out := []T{}
	for {
		ok, err := c.NextChild()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		if c.Name() != child {
			if log != nil {
				log.Debug("Unexpected tag, ignoring", zap.String("parent", root), zap.String("tag", c.Name()))
			}
			if err := c.Skip(); err != nil {
				return nil, err
			}
			continue
		}
		v, keep, err := read(c)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, v)
		}
	}
}

// readRecord decodes the first child element of a <Data> wrapper, or the
// root itself when the document is the bare element.
func readRecord[T any](text, elem string, read func(*xmlx.Cursor) (T, error)) (T, error) {
	var zero T
	c, err := xmlx.Open(text)
	if err != nil {
		return zero, err
	}
	if c.Name() == elem {
		return read(c)
	}
	if err := c.Require(dataRoot); err != nil {
		return zero, err
	}
	for {
		ok, err := c.NextChild()
		if err != nil {
			return zero, err
		}
		if !ok {
			return zero, fmt.Errorf("%w: no <%s> in document", xmlx.ErrStructure, elem)
		}
		if c.Name() == elem {
			return read(c)
		}
		if err := c.Skip(); err != nil {
			return zero, err
		}
	}
}

func seasonMatches(filter, season int) bool {
	return filter == AllSeasons || filter == season
}
