package format

import (
	"encoding"

	"github.com/adatags/adatags/adatags"
)

// Encoder turns a batch of tags into a byte stream in some output
// format.
type Encoder interface {
	encoding.TextMarshaler
	Encode(tags []adatags.Tag) error
}
