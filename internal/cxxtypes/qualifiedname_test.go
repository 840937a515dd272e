package cxxtypes

import "testing"

func TestQualifiedNameStringJoinsSegments(t *testing.T) {
	n := QualifiedName{
		LeadingGlobal: true,
		Segments: []QualifiedNameSegment{
			PlainSegment{Name: "std"},
			TemplateIDSegment{Name: "vector"},
			DestructorSegment{Name: "vector"},
		},
	}

	got := n.String()
	want := "::std::vector<...>::~vector"

	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestQualifiedNameStringAnonymous(t *testing.T) {
	n := QualifiedName{Segments: []QualifiedNameSegment{AnonymousName{ID: 3}}}

	if got := n.String(); got != "(anonymous)" {
		t.Errorf("String() = %q, want %q", got, "(anonymous)")
	}
}
