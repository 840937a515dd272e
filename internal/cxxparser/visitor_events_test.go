package cxxparser

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// TestVisitorEventOrdering asserts that enter/exit events for a nested
// namespace and class are emitted in the right order and paired, using
// gomock's InOrder to pin the sequence rather than just the call count.
func TestVisitorEventOrdering(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := NewMockVisitor(ctrl)

	gomock.InOrder(
		v.EXPECT().EnterNamespace(gomock.Any()),
		v.EXPECT().EnterClass(gomock.Any()),
		v.EXPECT().OnVariable(gomock.Any()),
		v.EXPECT().ExitClass(gomock.Any()),
		v.EXPECT().ExitNamespace(gomock.Any()),
	)

	p := New("<test>", "namespace a { struct B { int m; }; }", DefaultOptions(), v)

	if _, _, err := p.Parse(); err != nil {
		t.Fatalf("Parse: %v", err)
	}
}

func TestVisitorRoutesDefineAndInclude(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := NewMockVisitor(ctrl)

	v.EXPECT().OnInclude(gomock.Any())
	v.EXPECT().OnDefine(gomock.Any())
	v.EXPECT().OnVariable(gomock.Any())

	p := New("<test>", "#include <foo.h>\n#define LIMIT 10\nint x;\n", DefaultOptions(), v)

	if _, _, err := p.Parse(); err != nil {
		t.Fatalf("Parse: %v", err)
	}
}

func TestVisitorDoesNotFireOnLineDirective(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := NewMockVisitor(ctrl)

	// #line never reaches OnPragma/OnDefine/OnInclude; only the
	// surrounding variable declarations fire.
	v.EXPECT().OnVariable(gomock.Any()).Times(2)

	p := New("<test>", "int a;\n#line 50 \"x.h\"\nint b;\n", DefaultOptions(), v)

	if _, _, err := p.Parse(); err != nil {
		t.Fatalf("Parse: %v", err)
	}
}
