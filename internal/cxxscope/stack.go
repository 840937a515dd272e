// Package cxxscope maintains the parser's lexical-scope stack: the path
// from the global scope down to whatever namespace/class/template scope
// is currently open, plus the class-body access-specifier tracking that
// rides along with it.
package cxxscope

import "github.com/cppdecl/cxxheaderparser/internal/cxxtypes"

// Stack is the parser's view of a cxxtypes.Tree: a path of scopes
// currently open, top of path last.
type Stack struct {
	Tree *cxxtypes.Tree
	path []*cxxtypes.Scope
}

// New creates a Stack positioned at the global scope of a fresh Tree.
func New() *Stack {
	t := cxxtypes.NewTree()

	return &Stack{Tree: t, path: []*cxxtypes.Scope{t.Root()}}
}

// Current returns the innermost open scope.
func (s *Stack) Current() *cxxtypes.Scope { return s.path[len(s.path)-1] }

// Push opens a new scope of kind name nested in the current scope, sets
// its initial access specifier (meaningful only for ClassScope), and
// makes it current.
func (s *Stack) Push(kind cxxtypes.ScopeKind, name string, initialAccess cxxtypes.Access) *cxxtypes.Scope {
	child := s.Tree.Push(s.Current().Index, kind, name)
	child.Access = initialAccess
	s.path = append(s.path, child)

	return child
}

// Pop closes the current scope, returning to its parent. It is a
// programmer error to pop the global scope; callers only call Pop
// exactly once per successful Push.
func (s *Stack) Pop() {
	if len(s.path) > 1 {
		s.path = s.path[:len(s.path)-1]
	}
}

// Depth reports how many scopes deep the stack currently is (1 at global
// scope).
func (s *Stack) Depth() int { return len(s.path) }

// SetAccess updates the current class scope's access specifier, as seen
// by a "public:"/"protected:"/"private:" label.
func (s *Stack) SetAccess(a cxxtypes.Access) { s.Current().Access = a }

// Access returns the current class scope's access specifier.
func (s *Stack) Access() cxxtypes.Access { return s.Current().Access }

// IsTypeName reports whether ident names a type visible from the
// current scope.
func (s *Stack) IsTypeName(ident string) bool { return s.Tree.IsTypeName(s.Current(), ident) }

// IsNamespaceAlias reports whether ident names a namespace alias visible
// from the current scope.
func (s *Stack) IsNamespaceAlias(ident string) bool {
	return s.Tree.IsNamespaceAlias(s.Current(), ident)
}

// DeclareType records ident as naming a type in the current scope.
func (s *Stack) DeclareType(ident string) { s.Current().DeclareType(ident) }

// DeclareNamespaceAlias records ident as naming a namespace alias in the
// current scope.
func (s *Stack) DeclareNamespaceAlias(ident string) { s.Current().DeclareNamespaceAlias(ident) }

// Seed pre-populates the global scope's type table, for
// Options.KnownTypeNames.
func (s *Stack) Seed(idents []string) {
	for _, id := range idents {
		s.Tree.Root().DeclareType(id)
	}
}
