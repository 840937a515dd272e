package cxxparser

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/cppdecl/cxxheaderparser/internal/cxxtypes"
)

// MockVisitor is a hand-written stand-in for what "mockgen -source
// visitor.go" would generate: a gomock.Controller-backed mock of
// Visitor, used to assert exact event ordering without building a real
// aggregate like SimpleVisitor does.
type MockVisitor struct {
	ctrl     *gomock.Controller
	recorder *MockVisitorMockRecorder
}

type MockVisitorMockRecorder struct {
	mock *MockVisitor
}

func NewMockVisitor(ctrl *gomock.Controller) *MockVisitor {
	m := &MockVisitor{ctrl: ctrl}
	m.recorder = &MockVisitorMockRecorder{m}

	return m
}

func (m *MockVisitor) EXPECT() *MockVisitorMockRecorder { return m.recorder }

func (m *MockVisitor) EnterNamespace(ns *cxxtypes.NamespaceDecl) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "EnterNamespace", ns)
}

func (mr *MockVisitorMockRecorder) EnterNamespace(ns interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnterNamespace", reflect.TypeOf((*MockVisitor)(nil).EnterNamespace), ns)
}

func (m *MockVisitor) ExitNamespace(ns *cxxtypes.NamespaceDecl) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ExitNamespace", ns)
}

func (mr *MockVisitorMockRecorder) ExitNamespace(ns interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExitNamespace", reflect.TypeOf((*MockVisitor)(nil).ExitNamespace), ns)
}

func (m *MockVisitor) EnterClass(cls *cxxtypes.ClassDecl) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "EnterClass", cls)
}

func (mr *MockVisitorMockRecorder) EnterClass(cls interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnterClass", reflect.TypeOf((*MockVisitor)(nil).EnterClass), cls)
}

func (m *MockVisitor) ExitClass(cls *cxxtypes.ClassDecl) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ExitClass", cls)
}

func (mr *MockVisitorMockRecorder) ExitClass(cls interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExitClass", reflect.TypeOf((*MockVisitor)(nil).ExitClass), cls)
}

func (m *MockVisitor) OnFunction(fn *cxxtypes.FunctionDecl) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnFunction", fn)
}

func (mr *MockVisitorMockRecorder) OnFunction(fn interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnFunction", reflect.TypeOf((*MockVisitor)(nil).OnFunction), fn)
}

func (m *MockVisitor) OnVariable(v *cxxtypes.VariableDecl) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnVariable", v)
}

func (mr *MockVisitorMockRecorder) OnVariable(v interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnVariable", reflect.TypeOf((*MockVisitor)(nil).OnVariable), v)
}

func (m *MockVisitor) OnTypedef(t *cxxtypes.TypedefDecl) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnTypedef", t)
}

func (mr *MockVisitorMockRecorder) OnTypedef(t interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnTypedef", reflect.TypeOf((*MockVisitor)(nil).OnTypedef), t)
}

func (m *MockVisitor) OnUsingAlias(u *cxxtypes.UsingAliasDecl) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnUsingAlias", u)
}

func (mr *MockVisitorMockRecorder) OnUsingAlias(u interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnUsingAlias", reflect.TypeOf((*MockVisitor)(nil).OnUsingAlias), u)
}

func (m *MockVisitor) OnUsingDeclaration(u *cxxtypes.UsingDeclarationDecl) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnUsingDeclaration", u)
}

func (mr *MockVisitorMockRecorder) OnUsingDeclaration(u interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnUsingDeclaration", reflect.TypeOf((*MockVisitor)(nil).OnUsingDeclaration), u)
}

func (m *MockVisitor) OnUsingDirective(u *cxxtypes.UsingDirectiveDecl) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnUsingDirective", u)
}

func (mr *MockVisitorMockRecorder) OnUsingDirective(u interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnUsingDirective", reflect.TypeOf((*MockVisitor)(nil).OnUsingDirective), u)
}

func (m *MockVisitor) OnUsingEnum(u *cxxtypes.UsingEnumDecl) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnUsingEnum", u)
}

func (mr *MockVisitorMockRecorder) OnUsingEnum(u interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnUsingEnum", reflect.TypeOf((*MockVisitor)(nil).OnUsingEnum), u)
}

func (m *MockVisitor) OnFriend(f *cxxtypes.FriendDecl) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnFriend", f)
}

func (mr *MockVisitorMockRecorder) OnFriend(f interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnFriend", reflect.TypeOf((*MockVisitor)(nil).OnFriend), f)
}

func (m *MockVisitor) OnEnum(e *cxxtypes.EnumDecl) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnEnum", e)
}

func (mr *MockVisitorMockRecorder) OnEnum(e interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnEnum", reflect.TypeOf((*MockVisitor)(nil).OnEnum), e)
}

func (m *MockVisitor) OnStaticAssert(sa *cxxtypes.StaticAssertDecl) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnStaticAssert", sa)
}

func (mr *MockVisitorMockRecorder) OnStaticAssert(sa interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnStaticAssert", reflect.TypeOf((*MockVisitor)(nil).OnStaticAssert), sa)
}

func (m *MockVisitor) OnPragma(p *cxxtypes.PragmaOrIncludeLineDecl) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnPragma", p)
}

func (mr *MockVisitorMockRecorder) OnPragma(p interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnPragma", reflect.TypeOf((*MockVisitor)(nil).OnPragma), p)
}

func (m *MockVisitor) OnDefine(d *cxxtypes.DefineDecl) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnDefine", d)
}

func (mr *MockVisitorMockRecorder) OnDefine(d interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnDefine", reflect.TypeOf((*MockVisitor)(nil).OnDefine), d)
}

func (m *MockVisitor) OnInclude(i *cxxtypes.IncludeDecl) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnInclude", i)
}

func (mr *MockVisitorMockRecorder) OnInclude(i interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnInclude", reflect.TypeOf((*MockVisitor)(nil).OnInclude), i)
}

func (m *MockVisitor) OnNamespaceAlias(a *cxxtypes.NamespaceAliasDecl) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnNamespaceAlias", a)
}

func (mr *MockVisitorMockRecorder) OnNamespaceAlias(a interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnNamespaceAlias", reflect.TypeOf((*MockVisitor)(nil).OnNamespaceAlias), a)
}

func (m *MockVisitor) OnConcept(c *cxxtypes.ConceptDecl) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnConcept", c)
}

func (mr *MockVisitorMockRecorder) OnConcept(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnConcept", reflect.TypeOf((*MockVisitor)(nil).OnConcept), c)
}

func (m *MockVisitor) EnterExternBlock(e *cxxtypes.ExternBlockDecl) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "EnterExternBlock", e)
}

func (mr *MockVisitorMockRecorder) EnterExternBlock(e interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnterExternBlock", reflect.TypeOf((*MockVisitor)(nil).EnterExternBlock), e)
}

func (m *MockVisitor) ExitExternBlock(e *cxxtypes.ExternBlockDecl) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ExitExternBlock", e)
}

func (mr *MockVisitorMockRecorder) ExitExternBlock(e interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExitExternBlock", reflect.TypeOf((*MockVisitor)(nil).ExitExternBlock), e)
}
