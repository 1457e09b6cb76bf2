package exact

// literal is a scanned decimal literal.
type literal struct {
	neg bool
	// whole and frac are the digits before and after the decimal point, most
	// significant first.
	whole, frac []byte
}

// scanner validates decimal literals of the form
//
//	literal = [ "+" | "-" ] ( digits [ "." [ digits ] ] | "." digits ) .
//
// The decimal point is only accepted when fracOk is set.
type scanner struct {
	src  string
	kind string
	rune int
}

func scan(src, kind string, fracOk bool) (literal, error) {
	s := scanner{src: src, kind: kind}
	return s.literal(fracOk)
}

func (s *scanner) literal(fracOk bool) (literal, error) {
	var lit literal
	var dig, dot bool
	for i, r := range s.src {
		s.rune++
		switch {
		case r == '+' || r == '-':
			// A sign is only valid as the first rune.
			if i != 0 {
				return lit, s.error(i, r)
			}
			lit.neg = r == '-'
		case r == '.':
			if !fracOk || dot {
				return lit, s.error(i, r)
			}
			dot = true
		case '0' <= r && r <= '9':
			dig = true
			if dot {
				lit.frac = append(lit.frac, byte(r-'0'))
			} else {
				lit.whole = append(lit.whole, byte(r-'0'))
			}
		default:
			return lit, s.error(i, r)
		}
	}
	if !dig {
		return lit, &LiteralError{Text: s.src, Kind: s.kind, Col: s.rune}
	}
	return lit, nil
}

// error creates an error for the rune r found at byte offset i.
func (s *scanner) error(i int, r rune) error {
	return &LiteralError{
		Text: s.src[:i] + string(r),
		Kind: s.kind,
		Col:  s.rune,
	}
}

// magnitude returns the digits of the literal, whole then fractional, as a
// tidy digit sequence.
func (lit literal) magnitude() digits {
	z := make(digits, 0, len(lit.whole)+len(lit.frac))
	for i := len(lit.frac) - 1; i >= 0; i-- {
		z = append(z, lit.frac[i])
	}
	for i := len(lit.whole) - 1; i >= 0; i-- {
		z = append(z, lit.whole[i])
	}
	return z.tidy()
}
