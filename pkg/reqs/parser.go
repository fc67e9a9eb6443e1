package reqs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/logicrando/pkg/bits"
)

// Resolver is the world builder's name-resolution boundary (spec.md §6):
// the parser never knows how a NAME maps to a bit or to a set of per-copy
// bits, it only asks the Resolver.
type Resolver interface {
	// Resolve returns the single bit NAME denotes (item, area, event,
	// option, or trick), or false if NAME is unknown.
	Resolve(name string) (bits.ID, bool)

	// CopyBits returns the distinct bits representing individual copies of
	// the item NAME, or false if NAME does not name a multi-copy item.
	CopyBits(name string) ([]bits.ID, bool)
}

// ParseError reports a malformed requirement expression, carrying the
// offending token so callers can produce spec.md §7's "ConfigError ...
// surfaced to caller with the offending token".
type ParseError struct {
	Token string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("reqs: %s: %q", e.Msg, e.Token)
}

// Parse compiles a requirement expression (spec.md §6 BNF) against width
// bits, resolving names through res.
//
//	expr := disj
//	disj := conj ("|" conj)*
//	conj := atom ("&" atom)*
//	atom := "(" disj ")" | TEXT
func Parse(width int, expr string, res Resolver) (Requirement, error) {
	p := &parser{src: expr, width: width, res: res}
	r, err := p.parseDisj()
	if err != nil {
		return Requirement{}, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return Requirement{}, &ParseError{Token: p.src[p.pos:], Msg: "unexpected trailing input"}
	}
	return r, nil
}

type parser struct {
	src   string
	pos   int
	width int
	res   Resolver
}

func (p *parser) parseDisj() (Requirement, error) {
	left, err := p.parseConj()
	if err != nil {
		return Requirement{}, err
	}
	for {
		p.skipSpace()
		if !p.consumeByte('|') {
			return left, nil
		}
		right, err := p.parseConj()
		if err != nil {
			return Requirement{}, err
		}
		left = Or(left, right)
	}
}

func (p *parser) parseConj() (Requirement, error) {
	left, err := p.parseAtom()
	if err != nil {
		return Requirement{}, err
	}
	for {
		p.skipSpace()
		if !p.consumeByte('&') {
			return left, nil
		}
		right, err := p.parseAtom()
		if err != nil {
			return Requirement{}, err
		}
		left = And(left, right)
	}
}

func (p *parser) parseAtom() (Requirement, error) {
	p.skipSpace()
	if p.consumeByte('(') {
		inner, err := p.parseDisj()
		if err != nil {
			return Requirement{}, err
		}
		p.skipSpace()
		if !p.consumeByte(')') {
			return Requirement{}, &ParseError{Token: p.remainder(), Msg: "missing closing parenthesis"}
		}
		return inner, nil
	}

	text := p.consumeText()
	text = strings.TrimSpace(text)
	if text == "" {
		return Requirement{}, &ParseError{Token: p.remainder(), Msg: "empty atom"}
	}
	return p.compileText(text)
}

// compileText implements the TEXT semantics of spec.md §6.
func (p *parser) compileText(text string) (Requirement, error) {
	switch text {
	case "Nothing":
		return Trivial(p.width), nil
	case "Impossible":
		return Impossible(p.width), nil
	}

	if name, n, ok := splitCountAtom(text); ok {
		copies, known := p.res.CopyBits(name)
		if !known {
			return Requirement{}, &ParseError{Token: name, Msg: "unknown multi-copy item"}
		}
		if n > len(copies) {
			return Impossible(p.width), nil
		}
		return unionOfNSubsets(p.width, copies, n), nil
	}

	bit, ok := p.res.Resolve(text)
	if !ok {
		return Requirement{}, &ParseError{Token: text, Msg: "unresolved name"}
	}
	return Atom(p.width, bit), nil
}

// splitCountAtom recognizes "NAME x N" and returns (NAME, N, true); the
// last whitespace-delimited field must be "x" followed a decimal integer
// in the next field, e.g. "Goddess Sword x 2".
func splitCountAtom(text string) (string, int, bool) {
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return "", 0, false
	}
	if fields[len(fields)-2] != "x" {
		return "", 0, false
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil || n < 0 {
		return "", 0, false
	}
	name := strings.Join(fields[:len(fields)-2], " ")
	return name, n, true
}

// unionOfNSubsets returns the Or of FromConjunct(s) for every N-element
// subset s of copies, per spec.md §6: "compiled to the union of N-subsets
// of the copy bits". N == 0 yields Trivial (the empty subset).
func unionOfNSubsets(width int, copies []bits.ID, n int) Requirement {
	if n == 0 {
		return Trivial(width)
	}
	out := Impossible(width)
	var chosen []bits.ID
	var walk func(start int)
	walk = func(start int) {
		if len(chosen) == n {
			conjunct := bits.New(width)
			for _, b := range chosen {
				conjunct.Add(b)
			}
			out = Or(out, FromConjunct(conjunct))
			return
		}
		remaining := n - len(chosen)
		for i := start; i <= len(copies)-remaining; i++ {
			chosen = append(chosen, copies[i])
			walk(i + 1)
			chosen = chosen[:len(chosen)-1]
		}
	}
	walk(0)
	return out
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) consumeByte(b byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == b {
		p.pos++
		return true
	}
	return false
}

// consumeText reads up to the next '|', '&', '(' or ')' (or end of
// input), matching the TEXT production's "[^|&()]+".
func (p *parser) consumeText() string {
	start := p.pos
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '|', '&', '(', ')':
			return p.src[start:p.pos]
		}
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) remainder() string {
	if p.pos >= len(p.src) {
		return ""
	}
	return p.src[p.pos:]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
