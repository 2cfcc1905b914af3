package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunPrintsTree(t *testing.T) {
	var out bytes.Buffer
	if err := run(strings.NewReader("a + b"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "AdditionExpression") {
		t.Fatalf("expected AdditionExpression in output, got:\n%s", got)
	}
	if !strings.Contains(got, `"a"`) || !strings.Contains(got, `"b"`) {
		t.Fatalf("expected leaf text in output, got:\n%s", got)
	}
}

func TestRunSwallowsParseErrorsAndStillPrints(t *testing.T) {
	var out bytes.Buffer
	if err := run(strings.NewReader("a +"), &out); err != nil {
		t.Fatalf("run should not fail on a parse error, got: %v", err)
	}
	if out.Len() == 0 {
		t.Fatal("expected a best-effort tree to be printed")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.IndentWidth != 2 {
		t.Fatalf("IndentWidth = %d, want 2", cfg.IndentWidth)
	}
	if cfg.ShowTrivia {
		t.Fatal("ShowTrivia should default to false")
	}
}
