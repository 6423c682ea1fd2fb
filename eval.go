package kalc

import "strconv"

// maxDepth bounds user-function recursion, since the language has no
// conditionals to terminate it.
const maxDepth = 256

// interp evaluates a statement sequence against a symbol table. It is
// created fresh for each Parse call; only the symbol table persists.
type interp struct {
	symbols *SymbolTable
	backend Backend
	angle   AngleUnit
	// frames holds user-function parameter bindings. Lookups consult only
	// the innermost frame; functions do not close over each other.
	frames []map[string]*Number
	depth  int
}

func newInterp(symbols *SymbolTable, backend Backend, angle AngleUnit) *interp {
	return &interp{symbols: symbols, backend: backend, angle: angle}
}

func (in *interp) zero() *Number {
	return &Number{real: in.backend.FromFloat(0), imag: in.backend.FromFloat(0)}
}

func (in *interp) real(m Magnitude) *Number {
	return &Number{real: m, imag: in.backend.FromFloat(0)}
}

// interpret evaluates each statement in order and returns the value of
// the final one.
func (in *interp) interpret(stmts []Stmt) (*Number, error) {
	var last *Number
	for _, s := range stmts {
		v, err := in.stmt(s)
		if err != nil {
			return nil, err
		}
		last = v
	}
	if last == nil {
		last = in.zero()
	}
	return last, nil
}

func (in *interp) stmt(s Stmt) (*Number, error) {
	switch s := s.(type) {
	case *VarDecl:
		in.symbols.Insert(s.Name, s)
		return in.expr(s.Value)
	case *FnDecl:
		in.symbols.Insert(s.Name+"()", s)
		return in.zero(), nil
	case *ExprStmt:
		return in.expr(s.X)
	}
	panic("kalc: unknown statement")
}

func (in *interp) expr(x Expr) (*Number, error) {
	switch x := x.(type) {
	case *Literal:
		m, err := in.backend.Parse(x.Text)
		if err != nil {
			return nil, err
		}
		return in.real(m), nil
	case *Var:
		return in.variable(x.Name)
	case *Group:
		return in.expr(x.Inner)
	case *Unary:
		v, err := in.expr(x.Operand)
		if err != nil {
			return nil, err
		}
		return &Number{real: v.real.Neg(), imag: v.imag.Neg(), unit: v.unit}, nil
	case *Unit:
		v, err := in.expr(x.Operand)
		if err != nil {
			return nil, err
		}
		u := "rad"
		if x.Kind == TokenDeg {
			u = "deg"
		}
		return &Number{real: v.real, imag: v.imag, unit: u}, nil
	case *Binary:
		return in.binary(x)
	case *FnCall:
		return in.call(x)
	}
	panic("kalc: unknown expression")
}

func (in *interp) variable(name string) (*Number, error) {
	if len(in.frames) > 0 {
		if v, ok := in.frames[len(in.frames)-1][name]; ok {
			return v, nil
		}
	}
	if decl, ok := in.symbols.Get(name); ok {
		return in.expr(decl.(*VarDecl).Value)
	}
	switch name {
	case "pi", "π":
		return in.real(in.backend.Pi()), nil
	case "e":
		return in.real(in.backend.E()), nil
	case "i":
		return &Number{real: in.backend.FromFloat(0), imag: in.backend.FromFloat(1)}, nil
	}
	return nil, &NameError{Name: name}
}

func (in *interp) binary(x *Binary) (*Number, error) {
	l, err := in.expr(x.Left)
	if err != nil {
		return nil, err
	}
	r, err := in.expr(x.Right)
	if err != nil {
		return nil, err
	}
	unit := l.unit
	if unit == "" {
		unit = r.unit
	}
	switch x.Op {
	case TokenPlus:
		return &Number{real: l.real.Add(r.real), imag: l.imag.Add(r.imag), unit: unit}, nil
	case TokenMinus:
		return &Number{real: l.real.Sub(r.real), imag: l.imag.Sub(r.imag), unit: unit}, nil
	case TokenStar:
		// (a+bi)(c+di) = (ac-bd) + (ad+bc)i
		a, b, c, d := l.real, l.imag, r.real, r.imag
		return &Number{
			real: a.Mul(c).Sub(b.Mul(d)),
			imag: a.Mul(d).Add(b.Mul(c)),
			unit: unit,
		}, nil
	case TokenSlash:
		a, b, c, d := l.real, l.imag, r.real, r.imag
		den := c.Mul(c).Add(d.Mul(d))
		if den.Sign() == 0 {
			return nil, &DomainError{X: c, Func: "/"}
		}
		return &Number{
			real: a.Mul(c).Add(b.Mul(d)).Div(den),
			imag: b.Mul(c).Sub(a.Mul(d)).Div(den),
			unit: unit,
		}, nil
	case TokenPower:
		return in.pow(l, r)
	}
	panic("kalc: unknown operator " + x.Op.String())
}

// pow raises l to the r'th power. Only real operands are supported; a
// negative base requires an integer exponent.
func (in *interp) pow(l, r *Number) (*Number, error) {
	if l.imag.Sign() != 0 || r.imag.Sign() != 0 {
		return nil, &DomainError{X: l.imag, Func: "^"}
	}
	base, exp := l.real, r.real
	if base.Sign() >= 0 {
		return in.real(base.Pow(exp)), nil
	}
	if exp.Fract().Sign() != 0 {
		return nil, &DomainError{X: base, Func: "^"}
	}
	m := base.Abs().Pow(exp)
	// An odd integer exponent flips the sign.
	if exp.Div(exp.FromFloat(2)).Fract().Sign() != 0 {
		m = m.Neg()
	}
	return in.real(m), nil
}

func (in *interp) call(x *FnCall) (*Number, error) {
	if decl, ok := in.symbols.Get(x.Name + "()"); ok {
		fn := decl.(*FnDecl)
		if len(x.Args) != len(fn.Params) {
			return nil, &CallError{Func: x.Name, Len: len(x.Args), Known: true}
		}
		if in.depth >= maxDepth {
			return nil, &RecursionError{Func: x.Name}
		}
		// Arguments evaluate in the caller's frame; the body evaluates
		// with only its own parameters bound.
		frame := make(map[string]*Number, len(fn.Params))
		for i, param := range fn.Params {
			v, err := in.expr(x.Args[i])
			if err != nil {
				return nil, err
			}
			frame[param] = v
		}
		in.frames = append(in.frames, frame)
		in.depth++
		v, err := in.expr(fn.Body)
		in.depth--
		in.frames = in.frames[:len(in.frames)-1]
		return v, err
	}
	f, ok := builtins[x.Name]
	if !ok {
		return nil, &CallError{Func: x.Name, Len: len(x.Args)}
	}
	if len(x.Args) != f.arity {
		return nil, &CallError{Func: x.Name, Len: len(x.Args), Known: true}
	}
	args := make([]*Number, len(x.Args))
	for i, a := range x.Args {
		v, err := in.expr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return f.fn(in, args)
}

// NameError is an error from a reference to a variable with no
// declaration in the session.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// CallError is an error from a call to an unknown function or a call with
// the wrong number of arguments.
type CallError struct {
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments in the call.
	Len int
	// Known is whether the function exists at all.
	Known bool
}

func (err *CallError) Error() string {
	if !err.Known {
		return "undefined function: " + strconv.Quote(err.Func)
	}
	return "cannot call " + err.Func + " with " + strconv.Itoa(err.Len) + " arguments"
}

// RecursionError is an error from a user function exceeding the recursion
// limit.
type RecursionError struct {
	// Func is the function whose call exceeded the limit.
	Func string
}

func (err *RecursionError) Error() string {
	return "call to " + err.Func + " exceeds maximum recursion depth"
}
