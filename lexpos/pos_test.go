package lexpos

import "testing"

func TestTrackerPos(t *testing.T) {
	tr := NewTracker()
	if got := tr.Pos(3); got != (Pos{Line: 0, Column: 3}) {
		t.Fatalf("got %+v", got)
	}
	tr.BreakLine(10)
	if got := tr.Pos(12); got != (Pos{Line: 1, Column: 2}) {
		t.Fatalf("got %+v", got)
	}
	tr.BreakLine(20)
	if got := tr.Pos(20); got != (Pos{Line: 2, Column: 0}) {
		t.Fatalf("got %+v", got)
	}
}

func TestSpanUnion(t *testing.T) {
	a := Span{Start: 2, End: 5}
	b := Span{Start: 4, End: 9}
	if got := a.Union(b); got != (Span{Start: 2, End: 9}) {
		t.Fatalf("got %+v", got)
	}
	if got := a.Union(Detached); got != a {
		t.Fatalf("union with detached should yield a, got %+v", got)
	}
}

func TestSpannedMap(t *testing.T) {
	s := NewSpanned(2, Span{Start: 0, End: 1})
	doubled := s.Map(func(v int) int { return v * 2 })
	if doubled.Value != 4 || doubled.Span != s.Span {
		t.Fatalf("got %+v", doubled)
	}
}
