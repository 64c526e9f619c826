package format

import (
	"encoding/json"
	"io"

	"github.com/adatags/adatags/adatags"
)

// JSONEncoder writes tags as a JSON array of objects, one per tag.
type JSONEncoder struct {
	w    io.Writer
	tags []adatags.Tag
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(tags []adatags.Tag) error {
	e.tags = tags
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data := e.buildTagData()
	return json.MarshalIndent(data, "", "  ")
}

type jsonTag struct {
	Name        string     `json:"name"`
	Kind        string     `json:"kind"`
	Line        int        `json:"line"`
	FilePos     int64      `json:"filePos"`
	IsFileScope bool       `json:"fileScope,omitempty"`
	Scope       *jsonScope `json:"scope,omitempty"`
	File        string     `json:"file,omitempty"`
}

type jsonScope struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

func (e *JSONEncoder) buildTagData() []jsonTag {
	result := make([]jsonTag, len(e.tags))
	for i, t := range e.tags {
		result[i] = jsonTag{
			Name:        t.Name,
			Kind:        t.Kind.String(),
			Line:        t.Line,
			FilePos:     t.FilePos,
			IsFileScope: t.IsFileScope,
			Scope:       buildScope(t.Scope),
			File:        t.File,
		}
	}
	return result
}

func buildScope(s adatags.Scope) *jsonScope {
	if !s.Present {
		return nil
	}
	return &jsonScope{Kind: s.Kind.String(), Name: s.Name}
}
