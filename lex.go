package kalc

import "unicode"

// Lex splits src into tokens. The result always ends with a TokenEOF
// token, so the parser may peek one token past any position without an
// explicit bounds check. Lexing is total: a rune that fits no token class
// becomes a TokenUnknown token rather than an error.
func Lex(src string) []Token {
	var toks []Token
	r := []rune(src)
	i := 0
	for i < len(r) {
		c := r[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '.', '0' <= c && c <= '9':
			j := i
			for j < len(r) && (r[j] == '.' || '0' <= r[j] && r[j] <= '9') {
				j++
			}
			toks = append(toks, Token{Kind: TokenLiteral, Value: string(r[i:j]), Pos: i})
			i = j
		case c == '_', unicode.IsLetter(c):
			// Identifiers stop at digits so that sqrt64 lexes as the name
			// sqrt followed by the literal 64.
			j := i
			for j < len(r) && (r[j] == '_' || unicode.IsLetter(r[j])) {
				j++
			}
			word := string(r[i:j])
			kind := TokenIdentifier
			switch word {
			case "deg":
				kind = TokenDeg
			case "rad":
				kind = TokenRad
			}
			toks = append(toks, Token{Kind: kind, Value: word, Pos: i})
			i = j
		default:
			kind := TokenUnknown
			switch c {
			case '+':
				kind = TokenPlus
			case '-', '−':
				kind = TokenMinus
			case '*', '×':
				kind = TokenStar
			case '/', '÷':
				kind = TokenSlash
			case '^':
				kind = TokenPower
			case '(':
				kind = TokenOpenParen
			case ')':
				kind = TokenClosedParen
			case '|':
				kind = TokenPipe
			case ',':
				kind = TokenComma
			case '=':
				kind = TokenEquals
			case '°':
				kind = TokenDeg
			}
			toks = append(toks, Token{Kind: kind, Value: string(c), Pos: i})
			i++
		}
	}
	return append(toks, Token{Kind: TokenEOF, Pos: len(r)})
}
