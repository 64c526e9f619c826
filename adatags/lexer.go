package adatags

import "strings"

// cmp reports whether buf starts with literal (case-insensitively),
// AND either literal consumes the whole of buf or the character right
// after it is a token boundary (whitespace, '(', ')', ':' or ';').
// That second condition is what stops "endless" from being read as a
// match for the keyword "end". An empty literal matches vacuously.
func cmp(buf []byte, literal string) bool {
	if literal == "" {
		return true
	}
	n := len(literal)
	if len(buf) < n {
		return false
	}
	if !strings.EqualFold(string(buf[:n]), literal) {
		return false
	}
	if n == len(buf) {
		return true
	}
	return isWordBoundary(buf[n])
}

func hasPrefixAt(buf []byte, pos int, s string) bool {
	if pos < 0 || pos+len(s) > len(buf) {
		return false
	}
	return strings.EqualFold(string(buf[pos:pos+len(s)]), s)
}

// parser wraps a cursor with the bits of state the recursive descent
// routines need beyond the raw line buffer: the position of the last
// successful keyword/literal match (used to stamp anonymous tokens
// whose name isn't the text the cursor is sitting on) and the options
// governing what gets emitted.
type parser struct {
	cur          *cursor
	matchLine    int
	matchFilePos int64
	opts         options

	// codeSwitchMode/codeNewMode and codeReturn let parseCodeStatement
	// signal a mode change ("exception" -> EXCEPTIONS) or a block end
	// ("end <name>") back to parse's CODE-mode loop, without
	// parseCodeStatement itself owning that loop's mode variable.
	codeSwitchMode bool
	codeNewMode    parseMode
	codeReturn     bool
}

// matchLiteral tries to match s at the current cursor position. On
// success it records the match position and advances the cursor past
// the matched text; on failure the cursor is left untouched.
func (p *parser) matchLiteral(s string) bool {
	c := p.cur
	if c.eof {
		return false
	}
	if !cmp(c.line[c.pos:c.lineLen], s) {
		return false
	}
	p.matchLine = c.lineNumber
	p.matchFilePos = c.filePos
	c.movePos(len(s))
	return true
}

// skipPast advances the cursor until literal matches (consuming it)
// or EOF is reached, skipping over comments along the way.
func (p *parser) skipPast(literal string) {
	c := p.cur
	for !c.eof && isAdaComment(c.line, c.pos) {
		c.readNewLine()
	}
	for !c.eof && !p.matchLiteral(literal) {
		c.movePos(1)
		for !c.eof && isAdaComment(c.line, c.pos) {
			c.readNewLine()
		}
	}
}
