package kalc

// The surface grammar, highest to lowest binding power:
//
// primary  = '(' expr ')' | '|' expr '|' | identifier-construct | literal,
//            optionally followed by a unit suffix (deg, rad)
// exponent = primary ('^' exponent)?
// unary    = '-' unary | exponent
// factor   = unary (('*' | '/' | implicit) unary)*
// sum      = factor (('+' | '-') factor)*
//
// An identifier in operator position is an implicit multiplication: 3y is
// 3*y. An identifier-led primary is a call when followed by an argument
// list, or by a bare literal when the name is a known function (sqrt64);
// otherwise it is a variable reference.

// Parser is a parse session. Its symbol table persists across Parse
// calls, so functions and variables declared in one call are visible to
// later ones. A Parser is not safe for concurrent use.
type Parser struct {
	tokens  []Token
	pos     int
	symbols *SymbolTable
	backend Backend
}

// Option is an option for creating a Parser.
type Option interface {
	option(*Parser)
}

type backendopt struct {
	b Backend
}

func (o backendopt) option(p *Parser) {
	p.backend = o.b
}

// WithBackend selects the numeric backend used for evaluation. The
// default is the native float64 backend.
func WithBackend(b Backend) Option {
	return backendopt{b}
}

// NewParser creates a parse session with an empty symbol table.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		symbols: NewSymbolTable(),
		backend: Float64(),
	}
	for _, o := range opts {
		o.option(p)
	}
	return p
}

// Symbols returns the session's symbol table.
func (p *Parser) Symbols() *SymbolTable {
	return p.symbols
}

// AngleUnit selects the trigonometric convention used during evaluation.
// It does not affect parsing.
type AngleUnit int

const (
	Radians AngleUnit = iota
	Degrees
)

// Parse tokenizes src, parses statements until the end of input,
// evaluates them, and returns the value of the final statement. Errors
// from evaluation are returned unchanged. The only side effect of a
// successful parse is symbol-table mutation on function declarations.
func (p *Parser) Parse(src string, unit AngleUnit) (*Number, error) {
	stmts, err := p.statements(src)
	if err != nil {
		return nil, err
	}
	in := newInterp(p.symbols, p.backend, unit)
	return in.interpret(stmts)
}

// statements tokenizes src and parses it into a statement sequence.
func (p *Parser) statements(src string) ([]Stmt, error) {
	p.tokens = Lex(src)
	p.pos = 0
	var stmts []Stmt
	for !p.atEnd() {
		s, err := p.stmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func (p *Parser) stmt() (Stmt, error) {
	if p.match(TokenIdentifier) {
		switch p.peekNext().Kind {
		case TokenEquals:
			return p.varDecl()
		case TokenOpenParen:
			return p.identifierStmt()
		}
	}
	x, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &ExprStmt{X: x}, nil
}

// varDecl parses name = expr.
func (p *Parser) varDecl() (Stmt, error) {
	name := p.advance().Value
	p.advance() // equals sign
	x, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &VarDecl{Name: name, Value: x}, nil
}

// identifierStmt resolves the declaration-versus-call ambiguity for a
// statement beginning with name(. The region parses identically either
// way, so parse it as a call first; a following = means it was a
// declaration, and the call's arguments become its parameter names.
// Otherwise rewind and parse the same region again as an expression,
// accepting the double parse for grammar simplicity.
func (p *Parser) identifierStmt() (Stmt, error) {
	mark := p.snapshot()
	primary, err := p.primary()
	if err != nil {
		return nil, err
	}

	if !p.match(TokenEquals) {
		p.restore(mark)
		x, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &ExprStmt{X: x}, nil
	}
	p.advance() // equals sign
	body, err := p.expr()
	if err != nil {
		return nil, err
	}

	call, ok := primary.(*FnCall)
	if !ok {
		// A unit suffix crept between the argument list and the equals
		// sign, e.g. f(x) deg = 1.
		t := p.tokens[mark]
		return nil, &UnexpectedTokenError{Col: t.Pos, Expected: TokenOpenParen, Found: t.Kind}
	}
	params := make([]string, 0, len(call.Args))
	for _, a := range call.Args {
		v, ok := a.(*Var)
		if !ok {
			return nil, &ParamListError{Col: p.tokens[mark].Pos, Func: call.Name}
		}
		params = append(params, v.Name)
	}
	decl := &FnDecl{Name: call.Name, Params: params, Body: body}
	// Register the function during parsing so that later parses in the
	// same session can recognize calls to it. Only declarations seen
	// earlier in the stream are visible; there is no hoisting.
	p.symbols.Insert(decl.Name+"()", decl)
	return decl, nil
}

func (p *Parser) expr() (Expr, error) {
	return p.sum()
}

func (p *Parser) sum() (Expr, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(TokenPlus) || p.match(TokenMinus) {
		op := p.advance().Kind
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) factor() (Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(TokenStar) || p.match(TokenSlash) || p.match(TokenIdentifier) {
		op := p.peek().Kind
		if op == TokenIdentifier {
			// Implicit multiplication. The identifier is the next
			// operand, not an operator, so don't consume it.
			op = TokenStar
		} else {
			p.advance()
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) unary() (Expr, error) {
	if p.match(TokenMinus) {
		op := p.advance().Kind
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: op, Operand: operand}, nil
	}
	return p.exponent()
}

func (p *Parser) exponent() (Expr, error) {
	left, err := p.primary()
	if err != nil {
		return nil, err
	}
	if p.match(TokenPower) {
		op := p.advance().Kind
		right, err := p.exponent()
		if err != nil {
			return nil, err
		}
		return &Binary{Left: left, Op: op, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) primary() (Expr, error) {
	var x Expr
	var err error
	switch p.peek().Kind {
	case TokenOpenParen:
		x, err = p.group()
	case TokenPipe:
		x, err = p.abs()
	case TokenIdentifier:
		x, err = p.identifier()
	case TokenLiteral:
		x = &Literal{Text: p.advance().Value}
	default:
		t := p.peek()
		return nil, &UnexpectedTokenError{Col: t.Pos, Expected: TokenLiteral, Found: t.Kind}
	}
	if err != nil {
		return nil, err
	}
	if !p.atEnd() && p.peek().Kind.IsUnit() {
		x = &Unit{Operand: x, Kind: p.advance().Kind}
	}
	return x, nil
}

func (p *Parser) group() (Expr, error) {
	p.advance() // open parenthesis
	inner, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenClosedParen); err != nil {
		return nil, err
	}
	return &Group{Inner: inner}, nil
}

// abs parses |x| as a call to the builtin abs.
func (p *Parser) abs() (Expr, error) {
	p.advance() // opening pipe
	inner, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenPipe); err != nil {
		return nil, err
	}
	return &FnCall{Name: "abs", Args: []Expr{&Group{Inner: inner}}}, nil
}

func (p *Parser) identifier() (Expr, error) {
	id := p.advance()

	// A literal directly after a known function name is that function's
	// sole argument: sqrt64.
	if p.match(TokenLiteral) && p.symbols.ContainsFunc(id.Value) {
		arg := &Literal{Text: p.advance().Value}
		return &FnCall{Name: id.Value, Args: []Expr{arg}}, nil
	}

	// A parenthesized argument list makes a call whether or not the name
	// is known, since declarations and calls are indistinguishable here.
	// The first argument is mandatory.
	if p.match(TokenOpenParen) {
		p.advance()
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		args := []Expr{arg}
		for p.match(TokenComma) {
			p.advance()
			arg, err := p.expr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		if _, err := p.consume(TokenClosedParen); err != nil {
			return nil, err
		}
		return &FnCall{Name: id.Value, Args: args}, nil
	}

	return &Var{Name: id.Value}, nil
}

// snapshot and restore implement speculative parsing: record the cursor,
// attempt one interpretation, and rewind if it is rejected. Each
// ambiguous construct rewinds at most once.
func (p *Parser) snapshot() int {
	return p.pos
}

func (p *Parser) restore(mark int) {
	p.pos = mark
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: TokenEOF, Pos: len(p.tokens)}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekNext() Token {
	if p.pos+1 >= len(p.tokens) {
		return Token{Kind: TokenEOF, Pos: len(p.tokens)}
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) advance() Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) match(kind TokenKind) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) consume(kind TokenKind) (Token, error) {
	if p.match(kind) {
		return p.advance(), nil
	}
	t := p.peek()
	return Token{}, &UnexpectedTokenError{Col: t.Pos, Expected: kind, Found: t.Kind}
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens) || p.tokens[p.pos].Kind == TokenEOF
}
