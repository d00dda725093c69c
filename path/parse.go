package path

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/lenstools/lenserrors"
)

// Parse parses a path expression into a Path.
//
// Examples:
//
//	Parse("")                     // root path
//	Parse("one")                  // key "one"
//	Parse("nest.two")             // key "nest", key "two"
//	Parse("items[3].name")        // key "items", index 3, key "name"
//	Parse(`["key.with.dots"]`)    // key "key.with.dots"
func Parse(expr string) (Path, error) {
	if expr == "" {
		return Path{}, nil
	}

	p := &parser{
		input: expr,
		pos:   0,
	}

	segs, err := p.parse()
	if err != nil {
		return Path{}, err
	}
	return Path{segs: segs}, nil
}

// MustParse is like Parse but panics on a syntax error. It is intended
// for path literals in code and tests.
func MustParse(expr string) Path {
	p, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// parser is the internal path expression parser.
type parser struct {
	input string
	pos   int
}

func (p *parser) parse() ([]Segment, error) {
	var segs []Segment

	// First segment: bare identifier or bracket.
	seg, err := p.parseFirstSegment()
	if err != nil {
		return nil, err
	}
	segs = append(segs, seg)

	for p.pos < len(p.input) {
		ch := p.peek()

		switch ch {
		case '.':
			p.advance()
			key, err := p.parseIdentifierSegment()
			if err != nil {
				return nil, err
			}
			segs = append(segs, key)

		case '[':
			seg, err := p.parseBracketSegment()
			if err != nil {
				return nil, err
			}
			segs = append(segs, seg)

		default:
			return nil, p.errorf("unexpected character %q", ch)
		}
	}

	return segs, nil
}

func (p *parser) parseFirstSegment() (Segment, error) {
	if p.peek() == '[' {
		return p.parseBracketSegment()
	}
	return p.parseIdentifierSegment()
}

func (p *parser) parseIdentifierSegment() (Segment, error) {
	if p.pos >= len(p.input) {
		return Segment{}, p.errorf("unexpected end after '.'")
	}
	key := p.parseIdentifier()
	if key == "" {
		return Segment{}, p.errorf("expected key")
	}
	return KeySegment(key), nil
}

func (p *parser) parseBracketSegment() (Segment, error) {
	p.advance() // consume '['
	if p.pos >= len(p.input) {
		return Segment{}, p.errorf("unexpected end after '['")
	}

	ch := p.peek()

	// Quoted key: ["key"] or ['key']
	if ch == '\'' || ch == '"' {
		quote := ch
		p.advance()
		key, err := p.parseQuotedString(quote)
		if err != nil {
			return Segment{}, err
		}
		if !p.consume(']') {
			return Segment{}, p.errorf("expected ']' after quoted key")
		}
		return KeySegment(key), nil
	}

	// Negative indices are rejected up front so they never silently
	// address the wrong element.
	if ch == '-' {
		return Segment{}, p.errorf("index must be non-negative")
	}

	if isDigit(ch) {
		numStr := p.parseDigits()
		if !p.consume(']') {
			return Segment{}, p.errorf("expected ']' after index")
		}
		idx, err := strconv.Atoi(numStr)
		if err != nil {
			return Segment{}, p.errorf("invalid index %q", numStr)
		}
		return IndexSegment(idx), nil
	}

	return Segment{}, p.errorf("unexpected character %q in bracket", ch)
}

// parseIdentifier consumes a run of bare key characters. Keys needing
// other characters use the bracketed quoted form.
func (p *parser) parseIdentifier() string {
	start := p.pos
	for p.pos < len(p.input) {
		if isIdentChar(p.input[p.pos]) {
			p.pos++
		} else {
			break
		}
	}
	return p.input[start:p.pos]
}

func (p *parser) parseQuotedString(quote byte) (string, error) {
	var result strings.Builder
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		if ch == quote {
			p.pos++
			return result.String(), nil
		}
		if ch == '\\' && p.pos+1 < len(p.input) {
			p.pos++
			escaped := p.input[p.pos]
			switch escaped {
			case 'n':
				result.WriteByte('\n')
			case 't':
				result.WriteByte('\t')
			case '\\':
				result.WriteByte('\\')
			case '\'':
				result.WriteByte('\'')
			case '"':
				result.WriteByte('"')
			default:
				result.WriteByte(escaped)
			}
			p.pos++
			continue
		}
		result.WriteByte(ch)
		p.pos++
	}
	return "", p.errorf("unterminated string")
}

func (p *parser) parseDigits() string {
	start := p.pos
	for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) advance() {
	if p.pos < len(p.input) {
		p.pos++
	}
}

func (p *parser) consume(ch byte) bool {
	if p.pos < len(p.input) && p.input[p.pos] == ch {
		p.pos++
		return true
	}
	return false
}

func (p *parser) errorf(format string, args ...any) error {
	return &lenserrors.PathSyntaxError{
		Expr:     p.input,
		Position: p.pos,
		Message:  fmt.Sprintf(format, args...),
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
