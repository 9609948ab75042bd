package bipoly

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/zvk/vankampen/pkg/cnum"
	"github.com/zvk/vankampen/pkg/upoly"
)

// Parse reads the textual polynomial expression grammar of spec.md §6:
// a sum of terms built from the indeterminates x and y, integer or
// decimal rational coefficients, +, -, *, /, ^ (or **) and
// parentheses, e.g. "x^2 - y^3" or "(x+y)*(x-y)*(x+2*y)". It is the
// default adapter standing in for the textual half of the
// "multivariate polynomial library" external collaborator.
func Parse(src string) (Poly, error) {
	toks, err := tokenize(src)
	if err != nil {
		return Poly{}, err
	}
	if len(toks) == 0 {
		return Poly{}, fmt.Errorf("bipoly: empty expression")
	}
	p := &parser{toks: toks}
	expr, err := p.parseExpr()
	if err != nil {
		return Poly{}, err
	}
	if !p.atEnd() {
		return Poly{}, fmt.Errorf("bipoly: unexpected trailing token %q", p.peek().Lexeme)
	}
	return expr, nil
}

// parser is a small hand-written recursive-descent/Pratt parser in
// the teacher's vm/grammar idiom, consuming the lexmachine token
// stream directly instead of through an ANTLR- or gorgo-generated
// table.
type parser struct {
	toks []*lexmachine.Token
	pos  int
}

func (p *parser) atEnd() bool { return p.pos >= len(p.toks) }

func (p *parser) peek() *lexmachine.Token {
	if p.atEnd() {
		return nil
	}
	return p.toks[p.pos]
}

func (p *parser) peekType() int {
	t := p.peek()
	if t == nil {
		return -1
	}
	return t.Type
}

func (p *parser) next() *lexmachine.Token {
	t := p.toks[p.pos]
	p.pos++
	return t
}

func (p *parser) expect(tt int) (*lexmachine.Token, error) {
	if p.peekType() != tt {
		got := "<eof>"
		if !p.atEnd() {
			got = string(p.peek().Lexeme)
		}
		return nil, fmt.Errorf("bipoly: expected %s, got %q", tokNames[tt], got)
	}
	return p.next(), nil
}

// parseExpr parses a sum of terms: expr := ["+"|"-"] term {("+"|"-") term}.
func (p *parser) parseExpr() (Poly, error) {
	neg := false
	if p.peekType() == tokPlus {
		p.next()
	} else if p.peekType() == tokMinus {
		p.next()
		neg = true
	}
	term, err := p.parseTerm()
	if err != nil {
		return Poly{}, err
	}
	sum := term
	if neg {
		sum = sum.negate()
	}
	for p.peekType() == tokPlus || p.peekType() == tokMinus {
		op := p.next()
		term, err := p.parseTerm()
		if err != nil {
			return Poly{}, err
		}
		if op.Type == tokMinus {
			term = term.negate()
		}
		sum = sum.add(term)
	}
	return sum, nil
}

// parseTerm parses a product: term := factor {("*"|"/") factor}, where
// the divisor must be a constant. Juxtaposition of factors is not
// accepted, except a number directly followed by x, y or i, which
// parseAtom reads as a coefficient times that atom.
func (p *parser) parseTerm() (Poly, error) {
	factor, err := p.parseFactor()
	if err != nil {
		return Poly{}, err
	}
	prod := factor
	for p.peekType() == tokStar || p.peekType() == tokSlash {
		op := p.next()
		rhs, err := p.parseFactor()
		if err != nil {
			return Poly{}, err
		}
		if op.Type == tokStar {
			prod = prod.mulPoly(rhs)
		} else {
			c, ok := rhs.asConstant()
			if !ok {
				return Poly{}, fmt.Errorf("bipoly: division by a non-constant polynomial is not supported")
			}
			prod = prod.scale(c.Inv())
		}
	}
	return prod, nil
}

// parseFactor parses a power: factor := atom [("^" | "**") exponent]
// (the lexer emits "**" as the same caret token as "^").
func (p *parser) parseFactor() (Poly, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return Poly{}, err
	}
	if p.peekType() == tokCaret {
		p.next()
		expTok, err := p.expect(tokNumber)
		if err != nil {
			return Poly{}, err
		}
		n, err := parseUint(string(expTok.Lexeme))
		if err != nil {
			return Poly{}, err
		}
		return atom.pow(n), nil
	}
	return atom, nil
}

// parseAtom parses a number, x, y, or a parenthesized sub-expression,
// with an optional unary minus already consumed by parseExpr for the
// leading position; nested unary minus ("-(x+1)") is handled here too.
func (p *parser) parseAtom() (Poly, error) {
	if p.atEnd() {
		return Poly{}, fmt.Errorf("bipoly: unexpected end of input")
	}
	switch p.peekType() {
	case tokMinus:
		p.next()
		inner, err := p.parseAtom()
		if err != nil {
			return Poly{}, err
		}
		return inner.negate(), nil
	case tokLParen:
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return Poly{}, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return Poly{}, err
		}
		return inner, nil
	case tokNumber:
		tok := p.next()
		c, err := parseRatLexeme(string(tok.Lexeme))
		if err != nil {
			return Poly{}, err
		}
		// "2x" / "2 x" style implicit coefficient-times-variable.
		if p.peekType() == tokIdent {
			v, err := p.parseAtom()
			if err != nil {
				return Poly{}, err
			}
			return v.scale(c), nil
		}
		return constPoly(c), nil
	case tokIdent:
		tok := p.next()
		switch strings.ToLower(string(tok.Lexeme)) {
		case "x":
			return xPoly(), nil
		case "y":
			return yPoly(), nil
		case "i":
			return constPoly(cnum.NewRat(0, 1, 1, 1)), nil
		default:
			return Poly{}, fmt.Errorf("bipoly: unknown indeterminate %q (only x and y are supported)", tok.Lexeme)
		}
	default:
		return Poly{}, fmt.Errorf("bipoly: unexpected token %q", p.peek().Lexeme)
	}
}

func parseUint(s string) (int, error) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("bipoly: exponent %q is not a non-negative integer", s)
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}

// parseRatLexeme parses a NUMBER token's lexeme ("3", "3.5", "3/2")
// into an exact rational coefficient.
func parseRatLexeme(s string) (cnum.Rat, error) {
	if strings.Contains(s, "/") {
		parts := strings.SplitN(s, "/", 2)
		num, ok1 := new(big.Int).SetString(parts[0], 10)
		den, ok2 := new(big.Int).SetString(parts[1], 10)
		if !ok1 || !ok2 {
			return cnum.Rat{}, fmt.Errorf("bipoly: malformed rational literal %q", s)
		}
		r := new(big.Rat).SetFrac(num, den)
		return cnum.Rat{Re: r, Im: new(big.Rat)}, nil
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return cnum.Rat{}, fmt.Errorf("bipoly: malformed numeric literal %q", s)
	}
	return cnum.Rat{Re: r, Im: new(big.Rat)}, nil
}

// --- small Poly helpers used only while building from parsed terms ---

func constPoly(c cnum.Rat) Poly {
	return Poly{Coeffs: [][]cnum.Rat{{c}}}
}

func xPoly() Poly {
	return Poly{Coeffs: [][]cnum.Rat{{cnum.Zero()}, {cnum.One()}}}
}

func yPoly() Poly {
	return Poly{Coeffs: [][]cnum.Rat{{cnum.Zero(), cnum.One()}}}
}

func (p Poly) asConstant() (cnum.Rat, bool) {
	if p.DegX() != 0 {
		return cnum.Rat{}, false
	}
	row := p.row(0)
	if row.Degree(upoly.Rats) > 0 {
		return cnum.Rat{}, false
	}
	return row.At(0, upoly.Rats), true
}

func (p Poly) negate() Poly {
	out := make([][]cnum.Rat, len(p.Coeffs))
	for i, row := range p.Coeffs {
		r := make([]cnum.Rat, len(row))
		for j, c := range row {
			r[j] = c.Neg()
		}
		out[i] = r
	}
	return Poly{Coeffs: out}
}

func (p Poly) scale(c cnum.Rat) Poly {
	out := make([][]cnum.Rat, len(p.Coeffs))
	for i, row := range p.Coeffs {
		r := make([]cnum.Rat, len(row))
		for j, cc := range row {
			r[j] = cc.Mul(c)
		}
		out[i] = r
	}
	return Poly{Coeffs: out}
}

func (p Poly) add(q Poly) Poly {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	out := make([][]cnum.Rat, n)
	for i := 0; i < n; i++ {
		out[i] = addRows(rowOf(p, i), rowOf(q, i))
	}
	return Poly{Coeffs: out}
}

func rowOf(p Poly, i int) []cnum.Rat {
	if i < len(p.Coeffs) {
		return p.Coeffs[i]
	}
	return nil
}

func addRows(a, b []cnum.Rat) []cnum.Rat {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]cnum.Rat, n)
	for j := 0; j < n; j++ {
		var av, bv cnum.Rat
		if j < len(a) {
			av = a[j]
		} else {
			av = cnum.Zero()
		}
		if j < len(b) {
			bv = b[j]
		} else {
			bv = cnum.Zero()
		}
		out[j] = av.Add(bv)
	}
	return out
}

// mulPoly multiplies two bivariate polynomials in their dense
// Coeffs[i][j] representation directly (a small convolution), rather
// than routing through pkg/upoly's lifted representation, since the
// parser builds values term-by-term and a direct convolution is the
// simplest correct thing here.
func (p Poly) mulPoly(q Poly) Poly {
	if len(p.Coeffs) == 0 || len(q.Coeffs) == 0 {
		return Poly{}
	}
	maxXi := len(p.Coeffs) + len(q.Coeffs) - 1
	out := make([][]cnum.Rat, maxXi)
	for i := range out {
		out[i] = []cnum.Rat{}
	}
	for i1, row1 := range p.Coeffs {
		for i2, row2 := range q.Coeffs {
			conv := convolveRows(row1, row2)
			out[i1+i2] = addRows(out[i1+i2], conv)
		}
	}
	return Poly{Coeffs: out}
}

func convolveRows(a, b []cnum.Rat) []cnum.Rat {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]cnum.Rat, len(a)+len(b)-1)
	for j := range out {
		out[j] = cnum.Zero()
	}
	for j1, c1 := range a {
		for j2, c2 := range b {
			out[j1+j2] = out[j1+j2].Add(c1.Mul(c2))
		}
	}
	return out
}

func (p Poly) pow(n int) Poly {
	out := constPoly(cnum.One())
	base := p
	for n > 0 {
		if n&1 == 1 {
			out = out.mulPoly(base)
		}
		base = base.mulPoly(base)
		n >>= 1
	}
	return out
}
