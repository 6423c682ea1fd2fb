package kalc

// TokenKind identifies the lexical class of a token.
type TokenKind int

const (
	// TokenUnknown is a rune the lexer does not recognize. The parser
	// reports it as an unexpected token when it is reached.
	TokenUnknown TokenKind = iota
	// TokenLiteral is a numeric literal.
	TokenLiteral
	// TokenIdentifier is a variable or function name.
	TokenIdentifier
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPower
	TokenOpenParen
	TokenClosedParen
	// TokenPipe delimits an absolute value group.
	TokenPipe
	TokenComma
	TokenEquals
	// TokenDeg and TokenRad are the two recognized unit suffixes.
	TokenDeg
	TokenRad
	// TokenEOF terminates every token stream.
	TokenEOF
)

var kindNames = [...]string{
	TokenUnknown:     "unknown",
	TokenLiteral:     "literal",
	TokenIdentifier:  "identifier",
	TokenPlus:        "+",
	TokenMinus:       "-",
	TokenStar:        "*",
	TokenSlash:       "/",
	TokenPower:       "^",
	TokenOpenParen:   "(",
	TokenClosedParen: ")",
	TokenPipe:        "|",
	TokenComma:       ",",
	TokenEquals:      "=",
	TokenDeg:         "deg",
	TokenRad:         "rad",
	TokenEOF:         "end of input",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// IsUnit reports whether k is one of the two unit suffix kinds.
func (k TokenKind) IsUnit() bool {
	return k == TokenDeg || k == TokenRad
}

// Token is a single lexical unit. Tokens are created once by the lexer and
// read-only afterward.
type Token struct {
	Kind  TokenKind
	Value string
	// Pos is the rune offset of the token in its input.
	Pos int
}

// Compare reports whether two tokens have the same kind, regardless of
// payload. Grammar dispatch uses kinds only.
func (t Token) Compare(u Token) bool {
	return t.Kind == u.Kind
}
