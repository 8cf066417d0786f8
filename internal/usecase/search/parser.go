package search

import (
	"strings"
	"unicode"
)

// ParseResult is the structured form of a raw query: include terms and
// dash-prefixed exclude terms, in the order they were encountered.
// Duplicates are preserved; dedup happens later in the pipeline.
type ParseResult struct {
	Terms   []string
	Exclude []string
}

// queryParser is a cursor over the query runes. Scanning runes (not bytes)
// keeps multi-byte symbols such as emoji intact.
type queryParser struct {
	src []rune
	pos int
}

// ParseQuery tokenizes a raw query string. Bare words and quoted phrases
// become include terms; tokens prefixed by one or more dashes become exclude
// terms. The parser is total: no input fails, unterminated quotes run to end
// of input, and dash runs with nothing attached are dropped.
func ParseQuery(raw string) ParseResult {
	p := &queryParser{src: []rune(raw)}
	var result ParseResult

	for {
		token, exclude, ok := p.next()
		if !ok {
			break
		}
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if exclude {
			result.Exclude = append(result.Exclude, token)
		} else {
			result.Terms = append(result.Terms, token)
		}
	}

	return result
}

// next scans one token. ok is false once the input is exhausted. Empty
// tokens may be returned and are dropped by the caller.
func (p *queryParser) next() (token string, exclude bool, ok bool) {
	p.skipSpace()
	if p.end() {
		return "", false, false
	}

	if p.peek() == '-' {
		// Any run of leading dashes collapses to a single exclusion marker.
		// The remainder is lexed in place: if the run is followed by
		// whitespace or end of input, the token is empty and nothing is
		// excluded.
		for !p.end() && p.peek() == '-' {
			p.advance()
		}
		if p.end() {
			return "", false, true
		}
		return p.lexToken(), true, true
	}

	return p.lexToken(), false, true
}

// lexToken reads a quoted phrase or a bare word at the current position.
// A bare word is a maximal run of non-whitespace, so a dash inside it stays
// ordinary text. At a whitespace position the bare word is empty.
func (p *queryParser) lexToken() string {
	if p.peek() == '"' {
		p.advance()
		start := p.pos
		for !p.end() && p.peek() != '"' {
			p.advance()
		}
		token := string(p.src[start:p.pos])
		if !p.end() {
			p.advance() // closing quote
		}
		return token
	}

	start := p.pos
	for !p.end() && !unicode.IsSpace(p.peek()) {
		p.advance()
	}
	return string(p.src[start:p.pos])
}

func (p *queryParser) skipSpace() {
	for !p.end() && unicode.IsSpace(p.peek()) {
		p.advance()
	}
}

func (p *queryParser) peek() rune { return p.src[p.pos] }

func (p *queryParser) advance() { p.pos++ }

func (p *queryParser) end() bool { return p.pos >= len(p.src) }
