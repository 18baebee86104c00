package pathspec

// ParsePath parses a URI path template per spec.md §4.5:
//
//	Path := "/" | Step+
//	Step := "/" Part+
//	Part := "{" ident "}" | segment
//
// origin is an opaque tag carried into returned errors, matching the
// core parser's entry points. A path with no leading '/' is a parse
// error.
func ParsePath(origin string, src []byte) (*PathSpec, error) {
	p := &parser{c: newCursor(src), origin: origin}
	return p.parsePath()
}

type parser struct {
	c      cursor
	origin string
}

func (p *parser) parsePath() (*PathSpec, error) {
	if len(p.c.src) == 0 || p.c.peek() != '/' {
		return nil, newError(p.origin, p.c.off, p.c.off, ErrMissingLeadingSlash, "path must start with '/'")
	}
	if len(p.c.src) == 1 {
		return &PathSpec{}, nil
	}

	var steps []PathStep
	for !p.c.eof() {
		slashStart := p.c.off
		p.c.bump()
		parts, err := p.parseParts()
		if err != nil {
			return nil, err
		}
		if len(parts) == 0 {
			return nil, newError(p.origin, slashStart, p.c.off, ErrUnexpectedByte,
				"expected a path segment or variable after '/'")
		}
		steps = append(steps, PathStep{Parts: parts})
	}
	return &PathSpec{Steps: steps}, nil
}

func (p *parser) parseParts() ([]PathPart, error) {
	var parts []PathPart
	for !p.c.eof() && p.c.peek() != '/' {
		switch p.c.peek() {
		case '{':
			v, err := p.parseVariable()
			if err != nil {
				return nil, err
			}
			parts = append(parts, v)
		case '}':
			return nil, newError(p.origin, p.c.off, p.c.off+1, ErrUnexpectedByte, "unexpected '}'")
		default:
			parts = append(parts, p.parseSegment())
		}
	}
	return parts, nil
}

func (p *parser) parseVariable() (Variable, error) {
	start := p.c.off
	p.c.bump() // consume '{'

	nameStart := p.c.off
	for !p.c.eof() && isIdentCont(p.c.peek()) {
		p.c.bump()
	}
	name := string(p.c.src[nameStart:p.c.off])

	if p.c.eof() || p.c.peek() != '}' {
		return "", newError(p.origin, start, p.c.off, ErrUnterminatedVariable, "missing closing '}'")
	}
	if name == "" {
		return "", newError(p.origin, start, p.c.off+1, ErrEmptyVariable, "variable name is empty")
	}
	if !isIdentStart(name[0]) {
		return "", newError(p.origin, nameStart, p.c.off, ErrInvalidVariableName,
			"variable name must start with a letter or underscore")
	}

	p.c.bump() // consume '}'
	return Variable(name), nil
}

func (p *parser) parseSegment() Segment {
	start := p.c.off
	for !p.c.eof() && !isPathSpecial(p.c.peek()) {
		p.c.bump()
	}
	return Segment(p.c.src[start:p.c.off])
}
