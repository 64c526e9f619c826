package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/adatags/adatags/adatags"
)

// LineEncoder writes tags one per line, tab-separated, in the classic
// ctags field order: name, kind letter, line number, file offset,
// scope kind, scope name. Absent fields are written as "-".
type LineEncoder struct {
	w    io.Writer
	tags []adatags.Tag
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(tags []adatags.Tag) error {
	e.tags = tags
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, tag := range e.tags {
		fmt.Fprintf(&sb, "%s\t%s\t%d\t%d\t%s\t%s\n",
			tag.Name,
			letterStr(tag.Kind),
			tag.Line,
			tag.FilePos,
			scopeKindStr(tag.Scope),
			scopeNameStr(tag.Scope),
		)
	}
	return []byte(sb.String()), nil
}

func letterStr(k adatags.Kind) string {
	if l := k.Letter(); l != 0 {
		return string(l)
	}
	return "-"
}

func scopeKindStr(s adatags.Scope) string {
	if !s.Present {
		return "-"
	}
	return s.Kind.String()
}

func scopeNameStr(s adatags.Scope) string {
	if !s.Present {
		return "-"
	}
	return s.Name
}
