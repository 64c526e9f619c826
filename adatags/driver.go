package adatags

import "fmt"

// Tag is one emitted named-declaration record.
type Tag struct {
	Name        string
	Kind        Kind
	Line        int
	FilePos     int64
	IsFileScope bool
	Scope       Scope
	File        string
}

// Scope describes the innermost enclosing declaration, if any, that
// bounds the name a tag refers to.
type Scope struct {
	Present bool
	Kind    Kind
	Name    string
}

// Sink receives tags as they're produced, for callers that want to
// stream tags rather than wait for FindTags to return the full slice.
// FindTags still always returns everything it built, regardless of
// whether a Sink was supplied; a MakeTag error aborts the run and is
// returned from FindTags.
type Sink interface {
	MakeTag(tag Tag) error
}

type options struct {
	fileScope     bool
	qualifiedTags bool
	fileName      string
	sink          Sink
	kindEnabled   map[Kind]bool
}

func newOptions() options {
	return options{}
}

func (o *options) enabled(k Kind) bool {
	if v, ok := o.kindEnabled[k]; ok {
		return v
	}
	return k.defaultEnabled()
}

// Option configures a FindTags run.
type Option func(*options)

// WithFileScope includes tags for names that are only visible within
// their own file. Off by default, matching ctags' "-f" semantics.
func WithFileScope(enabled bool) Option {
	return func(o *options) { o.fileScope = enabled }
}

// WithQualifiedTags additionally emits a second tag, named
// "<enclosing-scope>.<name>", for each emitted declaration of a
// qualifiable kind that has a qualifiable enclosing declaration.
// Top-level declarations get no second tag.
func WithQualifiedTags(enabled bool) Option {
	return func(o *options) { o.qualifiedTags = enabled }
}

// WithKindEnabled overrides a kind's default enabled/disabled state.
func WithKindEnabled(k Kind, enabled bool) Option {
	return func(o *options) {
		if o.kindEnabled == nil {
			o.kindEnabled = make(map[Kind]bool)
		}
		o.kindEnabled[k] = enabled
	}
}

// WithFileName attaches a file name to every Tag produced, for
// callers that drive FindTags over more than one file.
func WithFileName(name string) Option {
	return func(o *options) { o.fileName = name }
}

// WithSink additionally streams tags to sink as they're produced.
func WithSink(sink Sink) Option {
	return func(o *options) { o.sink = sink }
}

// FindTags walks one Ada compilation unit from reader and returns
// every tag it produced. Two conditions are reported through err: the
// cursor giving up after maxConsecutiveEOF reads past end of input
// (aborted), and a supplied Sink rejecting a tag; in both cases
// whatever tags were already recognized are still returned. A reader
// failure is not reported: LineReader has no error result, so a failed
// read ends the input just as end of file does.
func FindTags(reader LineReader, opts ...Option) ([]Tag, error) {
	o := newOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &parser{cur: newCursor(reader), opts: o}
	root := &Token{Kind: Undefined}

	p.cur.readNewLine()
	if !p.cur.eof {
		p.parse(modeRoot, root)
	}

	tags, err := emit(root, &o)
	if err != nil {
		return tags, fmt.Errorf("adatags: sink: %w", err)
	}

	if p.cur.aborted {
		return tags, fmt.Errorf("adatags: giving up after %d consecutive blank reads", maxConsecutiveEOF)
	}
	return tags, nil
}
