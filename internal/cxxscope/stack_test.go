package cxxscope

import (
	"testing"

	"github.com/cppdecl/cxxheaderparser/internal/cxxtypes"
)

func TestStackPushPopTracksDepthAndAccess(t *testing.T) {
	s := New()

	if s.Depth() != 1 {
		t.Fatalf("expected depth 1 at global scope, got %d", s.Depth())
	}

	s.Push(cxxtypes.ClassScope, "C", cxxtypes.Private)

	if s.Depth() != 2 {
		t.Fatalf("expected depth 2 after push, got %d", s.Depth())
	}

	if s.Access() != cxxtypes.Private {
		t.Fatalf("expected initial access Private, got %v", s.Access())
	}

	s.SetAccess(cxxtypes.Public)

	if s.Access() != cxxtypes.Public {
		t.Fatalf("expected access Public after SetAccess, got %v", s.Access())
	}

	s.Pop()

	if s.Depth() != 1 {
		t.Fatalf("expected depth 1 after pop, got %d", s.Depth())
	}
}

func TestStackIsTypeNameVisibleFromNestedScope(t *testing.T) {
	s := New()
	s.DeclareType("Foo")

	s.Push(cxxtypes.NamespaceScope, "ns", cxxtypes.Public)

	if !s.IsTypeName("Foo") {
		t.Errorf("expected Foo declared at global scope to be visible from a nested namespace")
	}

	if s.IsTypeName("Bar") {
		t.Errorf("did not expect Bar to be a known type name")
	}

	s.DeclareType("Bar")

	if !s.IsTypeName("Bar") {
		t.Errorf("expected Bar to be visible immediately after DeclareType")
	}
}

func TestStackSeedPrePopulatesGlobalScope(t *testing.T) {
	s := New()
	s.Seed([]string{"uint8_t", "size_t"})

	if !s.IsTypeName("uint8_t") || !s.IsTypeName("size_t") {
		t.Errorf("expected seeded type names to be visible")
	}
}

func TestStackPopNeverClosesGlobalScope(t *testing.T) {
	s := New()
	s.Pop()

	if s.Depth() != 1 {
		t.Fatalf("expected Pop at global scope to be a no-op, got depth %d", s.Depth())
	}
}
