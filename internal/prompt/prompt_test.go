package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestFloatRetriesUntilPositive(t *testing.T) {
	p, out := newTestPrompter("abc\n-2\n0\n3.5\n")

	v, err := p.Float("Working length lw (in)")
	if err != nil {
		t.Fatalf("Float: %v", err)
	}
	if v != 3.5 {
		t.Fatalf("Float = %v, want 3.5", v)
	}
	if got := strings.Count(out.String(), "  -> Not a number. Try again."); got != 1 {
		t.Fatalf("number retries = %d, want 1", got)
	}
	if got := strings.Count(out.String(), "  -> Enter a positive number."); got != 2 {
		t.Fatalf("positivity retries = %d, want 2", got)
	}
}

func TestFloatRejectsNaNInput(t *testing.T) {
	p, out := newTestPrompter("nan\n2\n")

	v, err := p.Float("Full workpiece length (in)")
	if err != nil {
		t.Fatalf("Float: %v", err)
	}
	if v != 2 {
		t.Fatalf("Float = %v, want 2", v)
	}
	if !strings.Contains(out.String(), "  -> Enter a positive number.") {
		t.Fatal("nan input did not trigger the positivity retry")
	}
}

func TestFloatDefaultEmptyTakesDefault(t *testing.T) {
	p, out := newTestPrompter("\n")

	v, err := p.FloatDefault("Available power P_m (hp)", 5.0)
	if err != nil {
		t.Fatalf("FloatDefault: %v", err)
	}
	if v != 5.0 {
		t.Fatalf("FloatDefault = %v, want 5", v)
	}
	if !strings.Contains(out.String(), "Available power P_m (hp) [default 5]: ") {
		t.Fatalf("prompt missing default hint: %q", out.String())
	}
}

func TestFloatDefaultExplicitValueWins(t *testing.T) {
	p, _ := newTestPrompter("7.25\n")

	v, err := p.FloatDefault("Setup time per batch (hr)", 0.25)
	if err != nil {
		t.Fatalf("FloatDefault: %v", err)
	}
	if v != 7.25 {
		t.Fatalf("FloatDefault = %v, want 7.25", v)
	}
}

func TestWearExponentEnforcesRange(t *testing.T) {
	p, out := newTestPrompter("1.5\n0\n0.3\n")

	v, err := p.WearExponent("Tooling constant n (0<n<1)", 0.2)
	if err != nil {
		t.Fatalf("WearExponent: %v", err)
	}
	if v != 0.3 {
		t.Fatalf("WearExponent = %v, want 0.3", v)
	}
	if !strings.Contains(out.String(), "  -> n must be between 0 and 1 (e.g., 0.1-0.4). Try again.") {
		t.Fatal("out-of-range value did not trigger the range retry")
	}
	if !strings.Contains(out.String(), "  -> Enter a positive number.") {
		t.Fatal("zero did not trigger the positivity retry")
	}
}

func TestWearExponentDefaultPasses(t *testing.T) {
	p, _ := newTestPrompter("\n")

	v, err := p.WearExponent("Tooling constant n (0<n<1)", 0.2)
	if err != nil {
		t.Fatalf("WearExponent: %v", err)
	}
	if v != 0.2 {
		t.Fatalf("WearExponent = %v, want 0.2", v)
	}
}

func TestSelectReturnsIndex(t *testing.T) {
	p, out := newTestPrompter("x\n9\n2\n")

	idx, err := p.Select("Workpiece material", []string{"carbon steel", "alloy steel", "custom"})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if idx != 1 {
		t.Fatalf("Select = %d, want 1", idx)
	}
	if got := strings.Count(out.String(), "  1. carbon steel"); got != 1 {
		t.Fatalf("menu printed %d times, want 1", got)
	}
	if got := strings.Count(out.String(), "Select [number]: "); got != 3 {
		t.Fatalf("selection prompted %d times, want 3", got)
	}
}

func TestConfirmDefaultsToYes(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"\n", true},
		{"y\n", true},
		{"no\n", true},
		{"n\n", false},
		{"N\n", false},
		{" n \n", false},
	}
	for _, tc := range cases {
		p, _ := newTestPrompter(tc.input)
		got, err := p.Confirm("Include ROUGH pass? [Y/n]: ")
		if err != nil {
			t.Fatalf("Confirm(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("Confirm(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestExhaustedInputReturnsError(t *testing.T) {
	p, _ := newTestPrompter("")

	if _, err := p.Float("Working length lw (in)"); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("Float on empty stream: %v", err)
	}
	if _, err := p.Select("Rough operation", []string{"turn/thread"}); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("Select on empty stream: %v", err)
	}
	if _, err := p.Confirm("Include FINISH pass? [Y/n]: "); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("Confirm on empty stream: %v", err)
	}
}
