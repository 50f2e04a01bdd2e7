package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestReport_SuccessAllOKOrSkipped(t *testing.T) {
	r := &Report{Phases: []Phase{
		{Name: "tips", Status: StatusOK},
		{Name: "pre-checkpoint", Status: StatusSkipped},
	}}
	if !r.Success() {
		t.Fatalf("expected Success() true")
	}
}

func TestReport_SuccessFalseOnFailure(t *testing.T) {
	r := &Report{Phases: []Phase{
		{Name: "tips", Status: StatusOK},
		{Name: "genesis-header", Status: StatusFailed},
	}}
	if r.Success() {
		t.Fatalf("expected Success() false")
	}
}

func TestWriteText_IncludesEachPhase(t *testing.T) {
	r := &Report{
		Phases: []Phase{
			{Name: "tips", Status: StatusOK},
			{Name: "pre-checkpoint", Status: StatusSkipped},
		},
		ChainWalkSteps: 3,
		GenesisKind:    GenesisOriginal,
	}
	var buf bytes.Buffer
	if err := WriteText(&buf, r); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"[ok] tips", "[skipped] pre-checkpoint", "3 steps", string(GenesisOriginal)} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q, got:\n%s", want, out)
		}
	}
}
