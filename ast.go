package kalc

// Expr is an expression node. Nodes are created during parsing, own their
// children exclusively, and are never mutated afterward.
type Expr interface {
	exprNode()
}

// Binary is an infix operation. Op is one of the operator token kinds.
type Binary struct {
	Left  Expr
	Op    TokenKind
	Right Expr
}

// Unary is prefix negation.
type Unary struct {
	Op      TokenKind
	Operand Expr
}

// Unit tags its operand with a unit suffix, TokenDeg or TokenRad.
type Unit struct {
	Operand Expr
	Kind    TokenKind
}

// Var is a variable reference.
type Var struct {
	Name string
}

// Group is a parenthesized expression.
type Group struct {
	Inner Expr
}

// FnCall is a function call with ordered arguments.
type FnCall struct {
	Name string
	Args []Expr
}

// Literal is a numeric literal, kept as source text until evaluation.
type Literal struct {
	Text string
}

func (*Binary) exprNode()  {}
func (*Unary) exprNode()   {}
func (*Unit) exprNode()    {}
func (*Var) exprNode()     {}
func (*Group) exprNode()   {}
func (*FnCall) exprNode()  {}
func (*Literal) exprNode() {}

// Stmt is the unit the interpreter consumes.
type Stmt interface {
	stmtNode()
}

// VarDecl binds a name to the value of an expression.
type VarDecl struct {
	Name  string
	Value Expr
}

// FnDecl declares a function with ordered parameter names.
type FnDecl struct {
	Name   string
	Params []string
	Body   Expr
}

// ExprStmt is a bare expression statement.
type ExprStmt struct {
	X Expr
}

func (*VarDecl) stmtNode()  {}
func (*FnDecl) stmtNode()   {}
func (*ExprStmt) stmtNode() {}
