package workspace

import (
	"testing"

	"github.com/brask/javahdr/java/parser"
)

func TestUpdateAndGet(t *testing.T) {
	w := New()

	f := w.Update("A.java", []byte("class A {}"))
	if f.Err != nil {
		t.Fatalf("Update: %v", f.Err)
	}
	if f.Unit == nil || len(f.Unit.Decls) != 1 || f.Unit.Decls[0].Name != "A" {
		t.Fatalf("unit = %+v, want a single class A", f.Unit)
	}

	got := w.Get("A.java")
	if got != f {
		t.Errorf("Get returned a different *File than Update produced")
	}
}

func TestUpdateWithSyntaxErrorKeepsFileNoUnit(t *testing.T) {
	w := New()

	f := w.Update("Bad.java", []byte("class {"))
	if f.Err == nil {
		t.Fatal("expected a parse error")
	}
	if f.Unit != nil {
		t.Errorf("unit = %+v, want nil on a failed parse", f.Unit)
	}
	if w.Get("Bad.java") != f {
		t.Error("a failed parse should still be tracked in the workspace")
	}
}

func TestForget(t *testing.T) {
	w := New()
	w.Update("A.java", []byte("class A {}"))
	w.Forget("A.java")
	if w.Get("A.java") != nil {
		t.Error("Forget should remove the tracked file")
	}
}

func TestDiagnosticForUsesZeroBasedPosition(t *testing.T) {
	_, err := parser.ParseString("class C {\n  int a\n}")
	if err == nil {
		t.Fatal("expected a parse error for a field missing its semicolon")
	}
	diag, ok := err.(*parser.Diagnostic)
	if !ok {
		t.Fatalf("error = %T, want *parser.Diagnostic", err)
	}

	d := diagnosticFor(diag)
	line, col := diag.Source.LineCol(int(diag.Pos))
	if int(d.Range.Start.Line) != line-1 || int(d.Range.Start.Character) != col-1 {
		t.Errorf("diagnostic range = %+v, want 0-based (%d,%d)", d.Range.Start, line-1, col-1)
	}
}
