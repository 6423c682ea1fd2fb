package kalc

// SymbolTable maps declared names to their most recent declaration.
// Function entries are keyed "name()", so a variable and a function may
// share a name without collision. A table belongs to a Parser session and
// persists across its Parse calls; entries live until overwritten.
type SymbolTable struct {
	decls map[string]Stmt
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{decls: make(map[string]Stmt)}
}

// Insert stores or overwrites the declaration for key.
func (s *SymbolTable) Insert(key string, decl Stmt) {
	s.decls[key] = decl
}

// Get returns the declaration stored for key.
func (s *SymbolTable) Get(key string) (Stmt, bool) {
	decl, ok := s.decls[key]
	return decl, ok
}

// ContainsFunc reports whether name is callable: either a function
// declared earlier in the session or a builtin. The parser uses this to
// decide whether an identifier followed by a bare literal is a call.
func (s *SymbolTable) ContainsFunc(name string) bool {
	if _, ok := s.decls[name+"()"]; ok {
		return true
	}
	_, ok := builtins[name]
	return ok
}
