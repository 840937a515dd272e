package cxxparser

import "github.com/cppdecl/cxxheaderparser/internal/cxxtypes"

// ClassScope is the aggregate "everything declared inside this
// class/struct/union" view a SimpleVisitor builds alongside the flat,
// source-order AST: most consumers ask "what are this class's methods"
// far more often than "replay me the event stream."
type ClassScope struct {
	Class        *cxxtypes.ClassDecl
	Methods      []*cxxtypes.FunctionDecl
	Fields       []*cxxtypes.VariableDecl
	Typedefs     []*cxxtypes.TypedefDecl
	UsingAliases []*cxxtypes.UsingAliasDecl
	Enums        []*cxxtypes.EnumDecl
	Classes      []*ClassScope
}

// NamespaceScope is the same aggregate view for a namespace (or the
// global namespace, when Namespace is nil).
type NamespaceScope struct {
	Namespace *cxxtypes.NamespaceDecl
	Functions []*cxxtypes.FunctionDecl
	Variables []*cxxtypes.VariableDecl
	Typedefs  []*cxxtypes.TypedefDecl
	Enums     []*cxxtypes.EnumDecl
	Classes   []*ClassScope
	Children  []*NamespaceScope
}

// ParsedData is the root of a SimpleVisitor's aggregate result: the
// global namespace scope plus every pragma/define/include line
// encountered at any nesting depth, in source order.
type ParsedData struct {
	Global        *NamespaceScope
	PragmaOrLines []*cxxtypes.PragmaOrIncludeLineDecl
}

// container is whichever of *NamespaceScope or *ClassScope is
// currently open; SimpleVisitor routes each event to it.
type container interface {
	addFunction(*cxxtypes.FunctionDecl)
	addVariable(*cxxtypes.VariableDecl)
	addTypedef(*cxxtypes.TypedefDecl)
	addEnum(*cxxtypes.EnumDecl)
	addClass(*ClassScope)
}

func (ns *NamespaceScope) addFunction(f *cxxtypes.FunctionDecl) { ns.Functions = append(ns.Functions, f) }
func (ns *NamespaceScope) addVariable(v *cxxtypes.VariableDecl) { ns.Variables = append(ns.Variables, v) }
func (ns *NamespaceScope) addTypedef(t *cxxtypes.TypedefDecl)   { ns.Typedefs = append(ns.Typedefs, t) }
func (ns *NamespaceScope) addEnum(e *cxxtypes.EnumDecl)         { ns.Enums = append(ns.Enums, e) }
func (ns *NamespaceScope) addClass(c *ClassScope)               { ns.Classes = append(ns.Classes, c) }

func (cs *ClassScope) addFunction(f *cxxtypes.FunctionDecl) { cs.Methods = append(cs.Methods, f) }
func (cs *ClassScope) addVariable(v *cxxtypes.VariableDecl) { cs.Fields = append(cs.Fields, v) }
func (cs *ClassScope) addTypedef(t *cxxtypes.TypedefDecl)   { cs.Typedefs = append(cs.Typedefs, t) }
func (cs *ClassScope) addEnum(e *cxxtypes.EnumDecl)         { cs.Enums = append(cs.Enums, e) }
func (cs *ClassScope) addClass(c *ClassScope)               { cs.Classes = append(cs.Classes, c) }

// SimpleVisitor is the default Visitor implementation: besides whatever
// a caller layers on top of it, it accumulates a ParsedData aggregate
// mirroring the reference implementation's simple.parse_string result.
// Create one with NewSimpleVisitor; the zero value has no open scope
// and cannot receive declaration events.
type SimpleVisitor struct {
	Data  ParsedData
	stack []container
}

func NewSimpleVisitor() *SimpleVisitor {
	root := &NamespaceScope{}
	v := &SimpleVisitor{Data: ParsedData{Global: root}}
	v.stack = []container{root}

	return v
}

func (v *SimpleVisitor) top() container { return v.stack[len(v.stack)-1] }

func (v *SimpleVisitor) EnterNamespace(ns *cxxtypes.NamespaceDecl) {
	child := &NamespaceScope{Namespace: ns}

	if parent, ok := v.top().(*NamespaceScope); ok {
		parent.Children = append(parent.Children, child)
	}

	v.stack = append(v.stack, child)
}

func (v *SimpleVisitor) ExitNamespace(*cxxtypes.NamespaceDecl) {
	v.stack = v.stack[:len(v.stack)-1]
}

func (v *SimpleVisitor) EnterClass(cls *cxxtypes.ClassDecl) {
	child := &ClassScope{Class: cls}
	v.top().addClass(child)
	v.stack = append(v.stack, child)
}

func (v *SimpleVisitor) ExitClass(*cxxtypes.ClassDecl) {
	v.stack = v.stack[:len(v.stack)-1]
}

func (v *SimpleVisitor) EnterExternBlock(*cxxtypes.ExternBlockDecl) {}
func (v *SimpleVisitor) ExitExternBlock(*cxxtypes.ExternBlockDecl)  {}

func (v *SimpleVisitor) OnFunction(fn *cxxtypes.FunctionDecl) { v.top().addFunction(fn) }
func (v *SimpleVisitor) OnVariable(vd *cxxtypes.VariableDecl) { v.top().addVariable(vd) }
func (v *SimpleVisitor) OnTypedef(t *cxxtypes.TypedefDecl)    { v.top().addTypedef(t) }
func (v *SimpleVisitor) OnEnum(e *cxxtypes.EnumDecl)          { v.top().addEnum(e) }

func (v *SimpleVisitor) OnUsingAlias(u *cxxtypes.UsingAliasDecl) {
	if cs, ok := v.top().(*ClassScope); ok {
		cs.UsingAliases = append(cs.UsingAliases, u)
	}
}

func (v *SimpleVisitor) OnUsingDeclaration(*cxxtypes.UsingDeclarationDecl) {}
func (v *SimpleVisitor) OnUsingDirective(*cxxtypes.UsingDirectiveDecl)     {}
func (v *SimpleVisitor) OnUsingEnum(*cxxtypes.UsingEnumDecl)               {}
func (v *SimpleVisitor) OnFriend(*cxxtypes.FriendDecl)                     {}
func (v *SimpleVisitor) OnStaticAssert(*cxxtypes.StaticAssertDecl)        {}
func (v *SimpleVisitor) OnNamespaceAlias(*cxxtypes.NamespaceAliasDecl)    {}
func (v *SimpleVisitor) OnConcept(*cxxtypes.ConceptDecl)                  {}

func (v *SimpleVisitor) OnPragma(p *cxxtypes.PragmaOrIncludeLineDecl) {
	v.Data.PragmaOrLines = append(v.Data.PragmaOrLines, p)
}

func (v *SimpleVisitor) OnDefine(d *cxxtypes.DefineDecl) {
	v.Data.PragmaOrLines = append(v.Data.PragmaOrLines, &d.PragmaOrIncludeLineDecl)
}

func (v *SimpleVisitor) OnInclude(i *cxxtypes.IncludeDecl) {
	v.Data.PragmaOrLines = append(v.Data.PragmaOrLines, &i.PragmaOrIncludeLineDecl)
}
