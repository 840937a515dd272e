package cxxparser

import (
	"testing"

	"github.com/cppdecl/cxxheaderparser/internal/cxxtoken"
	"github.com/cppdecl/cxxheaderparser/internal/cxxtypes"
)

func parseOrFatal(t *testing.T, src string) []cxxtypes.Declaration {
	t.Helper()

	p := New("<test>", src, DefaultOptions(), nil)

	decls, _, err := p.Parse()
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}

	return decls
}

func toks(ss ...string) []string {
	return ss
}

func spellings(ts []cxxtoken.Token) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Spelling
	}

	return out
}

func eqStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// S1: int x = 3;
func TestScenarioS1Variable(t *testing.T) {
	decls := parseOrFatal(t, "int x = 3;")
	if len(decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(decls))
	}

	vd, ok := decls[0].(*cxxtypes.VariableDecl)
	if !ok {
		t.Fatalf("expected *VariableDecl, got %T", decls[0])
	}

	ft, ok := vd.Type.(cxxtypes.FundamentalType)
	if !ok || ft.Spelling != "int" {
		t.Fatalf("expected Fundamental(int), got %#v", vd.Type)
	}

	if vd.Name != "x" {
		t.Fatalf("expected name x, got %q", vd.Name)
	}

	if !eqStrings(spellings(vd.InitializerTokens), toks("3")) {
		t.Fatalf("expected initializer [3], got %v", spellings(vd.InitializerTokens))
	}
}

// S2: namespace a { struct B { int m; }; }
func TestScenarioS2NamespaceWithStruct(t *testing.T) {
	decls := parseOrFatal(t, "namespace a { struct B { int m; }; }")
	if len(decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(decls))
	}

	ns, ok := decls[0].(*cxxtypes.NamespaceDecl)
	if !ok {
		t.Fatalf("expected *NamespaceDecl, got %T", decls[0])
	}

	if ns.Name == nil || ns.Name.String() != "a" {
		t.Fatalf("expected namespace a, got %v", ns.Name)
	}

	if len(ns.Body) != 1 {
		t.Fatalf("expected 1 body decl, got %d", len(ns.Body))
	}

	cd, ok := ns.Body[0].(*cxxtypes.ClassDecl)
	if !ok {
		t.Fatalf("expected *ClassDecl, got %T", ns.Body[0])
	}

	if cd.Key != "struct" || cd.Name == nil || cd.Name.String() != "B" {
		t.Fatalf("expected struct B, got key=%q name=%v", cd.Key, cd.Name)
	}

	if len(cd.Body) != 1 {
		t.Fatalf("expected 1 member, got %d", len(cd.Body))
	}

	member, ok := cd.Body[0].(*cxxtypes.VariableDecl)
	if !ok {
		t.Fatalf("expected *VariableDecl member, got %T", cd.Body[0])
	}

	if member.Name != "m" || member.Access != cxxtypes.Public {
		t.Fatalf("expected public member m, got name=%q access=%v", member.Name, member.Access)
	}
}

// S3: template<typename T, int N = 4> class Vec { public: T data[N]; };
func TestScenarioS3ClassTemplate(t *testing.T) {
	decls := parseOrFatal(t, "template<typename T, int N = 4> class Vec { public: T data[N]; };")
	if len(decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(decls))
	}

	cd, ok := decls[0].(*cxxtypes.ClassDecl)
	if !ok {
		t.Fatalf("expected *ClassDecl, got %T", decls[0])
	}

	if cd.Template == nil || len(cd.Template.Params) != 2 {
		t.Fatalf("expected 2 template params, got %#v", cd.Template)
	}

	if len(cd.Body) != 1 {
		t.Fatalf("expected 1 member, got %d", len(cd.Body))
	}

	member, ok := cd.Body[0].(*cxxtypes.VariableDecl)
	if !ok {
		t.Fatalf("expected *VariableDecl member, got %T", cd.Body[0])
	}

	arr, ok := member.Type.(cxxtypes.ArrayType)
	if !ok {
		t.Fatalf("expected ArrayType, got %T", member.Type)
	}

	if !eqStrings(spellings(arr.SizeTokens), toks("N")) {
		t.Fatalf("expected array size [N], got %v", spellings(arr.SizeTokens))
	}

	if member.Access != cxxtypes.Public {
		t.Fatalf("expected public access, got %v", member.Access)
	}
}

// S4: int f(int x, const char* s = "hi") noexcept;
func TestScenarioS4Function(t *testing.T) {
	decls := parseOrFatal(t, `int f(int x, const char* s = "hi") noexcept;`)
	if len(decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(decls))
	}

	fd, ok := decls[0].(*cxxtypes.FunctionDecl)
	if !ok {
		t.Fatalf("expected *FunctionDecl, got %T", decls[0])
	}

	if fd.Name.String() != "f" {
		t.Fatalf("expected name f, got %q", fd.Name.String())
	}

	if len(fd.Signature.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fd.Signature.Params))
	}

	if fd.Signature.Params[1].Name != "s" || len(fd.Signature.Params[1].DefaultTokens) == 0 {
		t.Fatalf("expected second param s with a default, got %#v", fd.Signature.Params[1])
	}

	if !fd.Signature.Noexcept.Present {
		t.Fatalf("expected noexcept present")
	}
}

// S5: struct A : public B<int>, virtual C {};
func TestScenarioS5Bases(t *testing.T) {
	decls := parseOrFatal(t, "struct A : public B<int>, virtual C {};")

	cd, ok := decls[0].(*cxxtypes.ClassDecl)
	if !ok {
		t.Fatalf("expected *ClassDecl, got %T", decls[0])
	}

	if len(cd.Bases) != 2 {
		t.Fatalf("expected 2 bases, got %d", len(cd.Bases))
	}

	if cd.Bases[0].Access != cxxtypes.Public || cd.Bases[0].IsVirtual {
		t.Fatalf("expected base 0 public non-virtual, got %#v", cd.Bases[0])
	}

	if cd.Bases[1].Access != cxxtypes.Public || !cd.Bases[1].IsVirtual {
		t.Fatalf("expected base 1 public virtual, got %#v", cd.Bases[1])
	}
}

// An unqualified base-specifier defaults to private under "class" and
// public under "struct"/"union", the same rule a class-key applies to
// its own members.
func TestBaseAccessDefaultsByClassKey(t *testing.T) {
	decls := parseOrFatal(t, "class Derived : Base {};")

	cd := decls[0].(*cxxtypes.ClassDecl)
	if len(cd.Bases) != 1 || cd.Bases[0].Access != cxxtypes.Private {
		t.Fatalf("expected a single private base under class, got %#v", cd.Bases)
	}

	decls = parseOrFatal(t, "struct Derived : Base {};")

	cd = decls[0].(*cxxtypes.ClassDecl)
	if len(cd.Bases) != 1 || cd.Bases[0].Access != cxxtypes.Public {
		t.Fatalf("expected a single public base under struct, got %#v", cd.Bases)
	}
}

// S6: enum class E : unsigned char { a, b = 2, c };
func TestScenarioS6ScopedEnum(t *testing.T) {
	decls := parseOrFatal(t, "enum class E : unsigned char { a, b = 2, c };")

	ed, ok := decls[0].(*cxxtypes.EnumDecl)
	if !ok {
		t.Fatalf("expected *EnumDecl, got %T", decls[0])
	}

	if !ed.IsScoped {
		t.Fatalf("expected scoped enum")
	}

	ft, ok := ed.UnderlyingType.(cxxtypes.FundamentalType)
	if !ok || ft.Spelling != "unsigned char" {
		t.Fatalf("expected underlying unsigned char, got %#v", ed.UnderlyingType)
	}

	if len(ed.Enumerators) != 3 {
		t.Fatalf("expected 3 enumerators, got %d", len(ed.Enumerators))
	}

	if ed.Enumerators[0].Name != "a" || len(ed.Enumerators[0].ValueTokens) != 0 {
		t.Fatalf("expected a with no value, got %#v", ed.Enumerators[0])
	}

	if ed.Enumerators[1].Name != "b" || !eqStrings(spellings(ed.Enumerators[1].ValueTokens), toks("2")) {
		t.Fatalf("expected b=2, got %#v", ed.Enumerators[1])
	}
}

// Property 6, template half: >> splits inside a template-argument list,
// so "vector<vector<int>>" parses as a type reference.
func TestPropertyRightShiftTemplateClose(t *testing.T) {
	decls := parseOrFatal(t, "vector<vector<int>> v;")

	vd, ok := decls[0].(*cxxtypes.VariableDecl)
	if !ok {
		t.Fatalf("expected *VariableDecl, got %T", decls[0])
	}

	nt, ok := vd.Type.(cxxtypes.NamedType)
	if !ok {
		t.Fatalf("expected NamedType, got %T", vd.Type)
	}

	seg, ok := nt.Name.Segments[len(nt.Name.Segments)-1].(cxxtypes.TemplateIDSegment)
	if !ok || seg.Name != "vector" {
		t.Fatalf("expected trailing vector<...> segment, got %#v", nt.Name.Segments)
	}
}

// #line and bare GCC linemarker directives retarget Location tracking
// instead of being surfaced as a PragmaOrIncludeLine declaration.
func TestLineDirectiveNotSurfacedAsDeclaration(t *testing.T) {
	decls := parseOrFatal(t, "int a;\n#line 100 \"other.h\"\nint b;\n")
	if len(decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d: %#v", len(decls), decls)
	}

	b, ok := decls[1].(*cxxtypes.VariableDecl)
	if !ok {
		t.Fatalf("expected *VariableDecl, got %T", decls[1])
	}

	if b.Name != "b" {
		t.Fatalf("expected second declaration named b, got %q", b.Name)
	}
}

func TestGCCLinemarkerNotSurfacedAsDeclaration(t *testing.T) {
	decls := parseOrFatal(t, "int a;\n# 5 \"included.h\" 1\nint b;\n")
	if len(decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d: %#v", len(decls), decls)
	}

	for _, d := range decls {
		if _, ok := d.(*cxxtypes.PragmaOrIncludeLineDecl); ok {
			t.Fatalf("linemarker leaked through as a PragmaOrIncludeLineDecl: %#v", d)
		}
	}
}

// Property 4: access specifiers follow the most recent label, defaulting
// per class-key.
func TestPropertyAccessDefaults(t *testing.T) {
	decls := parseOrFatal(t, "class C { int a; public: int b; private: int c; };")

	cd := decls[0].(*cxxtypes.ClassDecl)

	want := []cxxtypes.Access{cxxtypes.Private, cxxtypes.Public, cxxtypes.Private}
	if len(cd.Body) != len(want) {
		t.Fatalf("expected %d members, got %d", len(want), len(cd.Body))
	}

	for i, m := range cd.Body {
		vd := m.(*cxxtypes.VariableDecl)
		if vd.Access != want[i] {
			t.Fatalf("member %d: expected access %v, got %v", i, want[i], vd.Access)
		}
	}
}
