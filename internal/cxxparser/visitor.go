package cxxparser

import "github.com/cppdecl/cxxheaderparser/internal/cxxtypes"

// Visitor receives parse events in source order, the streaming
// alternative to collecting the whole AST. Every push-style event
// (enter_namespace, enter_class) is paired with a matching pop-style
// event once the matching closing delimiter is consumed, so a Visitor
// can maintain its own scope stack if it needs one independent of the
// parser's.
type Visitor interface {
	EnterNamespace(ns *cxxtypes.NamespaceDecl)
	ExitNamespace(ns *cxxtypes.NamespaceDecl)
	EnterClass(cls *cxxtypes.ClassDecl)
	ExitClass(cls *cxxtypes.ClassDecl)
	OnFunction(fn *cxxtypes.FunctionDecl)
	OnVariable(v *cxxtypes.VariableDecl)
	OnTypedef(t *cxxtypes.TypedefDecl)
	OnUsingAlias(u *cxxtypes.UsingAliasDecl)
	OnUsingDeclaration(u *cxxtypes.UsingDeclarationDecl)
	OnUsingDirective(u *cxxtypes.UsingDirectiveDecl)
	OnUsingEnum(u *cxxtypes.UsingEnumDecl)
	OnFriend(f *cxxtypes.FriendDecl)
	OnEnum(e *cxxtypes.EnumDecl)
	OnStaticAssert(sa *cxxtypes.StaticAssertDecl)
	OnPragma(p *cxxtypes.PragmaOrIncludeLineDecl)
	OnDefine(d *cxxtypes.DefineDecl)
	OnInclude(i *cxxtypes.IncludeDecl)
	OnNamespaceAlias(a *cxxtypes.NamespaceAliasDecl)
	OnConcept(c *cxxtypes.ConceptDecl)
	EnterExternBlock(e *cxxtypes.ExternBlockDecl)
	ExitExternBlock(e *cxxtypes.ExternBlockDecl)
}

// NullVisitor implements Visitor with no-op methods, so a consumer that
// only cares about a handful of events can embed it and override the
// rest.
type NullVisitor struct{}

func (NullVisitor) EnterNamespace(*cxxtypes.NamespaceDecl)           {}
func (NullVisitor) ExitNamespace(*cxxtypes.NamespaceDecl)            {}
func (NullVisitor) EnterClass(*cxxtypes.ClassDecl)                  {}
func (NullVisitor) ExitClass(*cxxtypes.ClassDecl)                   {}
func (NullVisitor) OnFunction(*cxxtypes.FunctionDecl)                {}
func (NullVisitor) OnVariable(*cxxtypes.VariableDecl)                {}
func (NullVisitor) OnTypedef(*cxxtypes.TypedefDecl)                  {}
func (NullVisitor) OnUsingAlias(*cxxtypes.UsingAliasDecl)            {}
func (NullVisitor) OnUsingDeclaration(*cxxtypes.UsingDeclarationDecl) {}
func (NullVisitor) OnUsingDirective(*cxxtypes.UsingDirectiveDecl)    {}
func (NullVisitor) OnUsingEnum(*cxxtypes.UsingEnumDecl)              {}
func (NullVisitor) OnFriend(*cxxtypes.FriendDecl)                    {}
func (NullVisitor) OnEnum(*cxxtypes.EnumDecl)                        {}
func (NullVisitor) OnStaticAssert(*cxxtypes.StaticAssertDecl)        {}
func (NullVisitor) OnPragma(*cxxtypes.PragmaOrIncludeLineDecl)       {}
func (NullVisitor) OnDefine(*cxxtypes.DefineDecl)                    {}
func (NullVisitor) OnInclude(*cxxtypes.IncludeDecl)                  {}
func (NullVisitor) OnNamespaceAlias(*cxxtypes.NamespaceAliasDecl)    {}
func (NullVisitor) OnConcept(*cxxtypes.ConceptDecl)                  {}
func (NullVisitor) EnterExternBlock(*cxxtypes.ExternBlockDecl)       {}
func (NullVisitor) ExitExternBlock(*cxxtypes.ExternBlockDecl)        {}
