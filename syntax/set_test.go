package syntax

import "testing"

func TestSyntaxSetAddContainsRemove(t *testing.T) {
	s := NewSyntaxSet()
	if !s.IsEmpty() {
		t.Fatal("new set should be empty")
	}
	s = s.Add(Plus)
	if s.IsEmpty() {
		t.Fatal("set should not be empty after Add")
	}
	if !s.Contains(Plus) {
		t.Error("expected set to contain Plus")
	}
	if s.Contains(Minus) {
		t.Error("expected set not to contain Minus")
	}
	s = s.Remove(Plus)
	if s.Contains(Plus) {
		t.Error("expected Plus to be removed")
	}
	if !s.IsEmpty() {
		t.Error("set should be empty again after removing its only member")
	}
}

func TestSyntaxSetOf(t *testing.T) {
	s := SyntaxSetOf(Plus, Minus, Star)
	for _, k := range []SyntaxKind{Plus, Minus, Star} {
		if !s.Contains(k) {
			t.Errorf("expected set to contain %s", k)
		}
	}
	if s.Contains(Slash) {
		t.Error("expected set not to contain Slash")
	}
}

func TestSyntaxSetUnion(t *testing.T) {
	a := SyntaxSetOf(Plus, Minus)
	b := SyntaxSetOf(Star, Slash)
	u := a.Union(b)
	for _, k := range []SyntaxKind{Plus, Minus, Star, Slash} {
		if !u.Contains(k) {
			t.Errorf("expected union to contain %s", k)
		}
	}
	// Union must not mutate its operands.
	if a.Contains(Star) || b.Contains(Plus) {
		t.Error("Union mutated one of its operands")
	}
}

func TestSyntaxSetSpansSeveralWords(t *testing.T) {
	// End is bit 0 (first word); Argument, the last kind, is bit 174, which
	// falls in the third word of the bitset.
	s := SyntaxSetOf(End, Argument)
	if !s.Contains(End) || !s.Contains(Argument) {
		t.Fatal("expected set to hold a kind from the first and the third word")
	}
	if s.Contains(Plus) {
		t.Error("expected set not to contain an untouched kind")
	}
}

func TestUnaryPrefixSet(t *testing.T) {
	members := []SyntaxKind{Plus, Minus, Bang, Tilde, PlusPlus, MinusMinus,
		Await, Cast, Bitcast, Dyncast, Sizeof, Alignof, Nameof, Typeof, Declof, Default}
	for _, k := range members {
		if !UnaryPrefixSet.Contains(k) {
			t.Errorf("expected UnaryPrefixSet to contain %s", k)
		}
	}
	if UnaryPrefixSet.Contains(Star) || UnaryPrefixSet.Contains(As) {
		t.Error("UnaryPrefixSet should not contain Star or As")
	}
}

func TestBinaryOpSetBoundaries(t *testing.T) {
	if !BinaryOpSet.Contains(AdditionExpression) || !BinaryOpSet.Contains(AsExpression) {
		t.Fatal("expected BinaryOpSet to contain its first and last members")
	}
	if BinaryOpSet.Contains(CallExpression) || BinaryOpSet.Contains(UnaryPlusExpression) {
		t.Error("BinaryOpSet should not contain invoke or unary kinds")
	}
}

func TestInvokeAndAccessStartSets(t *testing.T) {
	for _, k := range []SyntaxKind{LeftParen, LeftBracket, Lt} {
		if !InvokeStartSet.Contains(k) {
			t.Errorf("expected InvokeStartSet to contain %s", k)
		}
	}
	for _, k := range []SyntaxKind{Dot, Arrow, ColonColon} {
		if !AccessStartSet.Contains(k) {
			t.Errorf("expected AccessStartSet to contain %s", k)
		}
	}
	if InvokeStartSet.Contains(Dot) || AccessStartSet.Contains(LeftParen) {
		t.Error("InvokeStartSet and AccessStartSet should not overlap")
	}
}

func TestArgumentStartSetIsUnionOfPrimaryAndUnaryPrefix(t *testing.T) {
	for _, k := range []SyntaxKind{Name, NumericLiteral, LeftParen} {
		if !ArgumentStartSet.Contains(k) {
			t.Errorf("expected ArgumentStartSet to contain primary-starter %s", k)
		}
	}
	for _, k := range []SyntaxKind{Plus, Minus, Sizeof} {
		if !ArgumentStartSet.Contains(k) {
			t.Errorf("expected ArgumentStartSet to contain unary-prefix starter %s", k)
		}
	}
	if ArgumentStartSet.Contains(Comma) {
		t.Error("ArgumentStartSet should not contain Comma")
	}
}
