package ast

import "testing"

func TestParseNumberRoundTrip(t *testing.T) {
	cases := []string{
		"0",
		"42",
		"-17",
		"3.14",
		"-0.5",
		"1e10",
		"1e-10",
		"2.5e+3",
		"100.001",
	}
	for _, c := range cases {
		n := ParseNumber(c)
		got := n.String()
		want := c
		if c == "2.5e+3" {
			want = "2.5e3"
		}
		if got != want {
			t.Errorf("ParseNumber(%q).String() = %q, want %q", c, got, want)
		}
	}
}

func TestRpNumberEqualIgnoresExponentPlus(t *testing.T) {
	a := ParseNumber("1e3")
	b := ParseNumber("1e+3")
	if !a.Equal(b) {
		t.Fatalf("expected %q and %q to be equal", a.String(), b.String())
	}
}

func TestRpNumberNotEqual(t *testing.T) {
	a := ParseNumber("1")
	b := ParseNumber("2")
	if a.Equal(b) {
		t.Fatalf("expected 1 and 2 to differ")
	}
}
