package xmlx

import (
	"errors"
	"fmt"
)

// ErrStructure is matched by every structural decode failure: malformed
// framing, unreadable encodings, or a document that does not have the
// expected shape. Malformed scalar content never produces it.
var ErrStructure = errors.New("malformed document structure")

// DecodeError describes a structural failure at a specific tag.
type DecodeError struct {
	Op  string // operation that failed, e.g. "read int"
	Tag string // element the cursor was on, may be empty
	Err error
}

func (e *DecodeError) Error() string {
	if e == nil {
		return "decode error"
	}
	if e.Tag == "" {
		return fmt.Sprintf("xml %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("xml %s <%s>: %v", e.Op, e.Tag, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrStructure) match any DecodeError.
func (e *DecodeError) Is(target error) bool {
	return target == ErrStructure
}

func structural(op, tag string, err error) error {
	return &DecodeError{Op: op, Tag: tag, Err: err}
}
