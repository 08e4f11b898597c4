package logger

import "testing"

func TestRingKeepsMostRecent(t *testing.T) {
	r := NewRing(3)
	r.Info("one")
	r.Info("two")

	got := r.Records()
	if len(got) != 2 || got[0].Message != "one" || got[1].Message != "two" {
		t.Fatalf("records = %v, want one,two", got)
	}

	r.Info("three")
	r.Warn("four")

	got = r.Records()
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
	if got[0].Message != "two" || got[2].Message != "four" {
		t.Errorf("oldest-first order broken: %v", got)
	}
	if got[2].Level != "warn" {
		t.Errorf("level = %q, want warn", got[2].Level)
	}
}

func TestInitDispatchesToAllBackends(t *testing.T) {
	a := NewRing(10)
	b := NewRing(10)
	Init(a, b)
	defer Init()

	Info("hello", "k", "v")

	for name, ring := range map[string]*Ring{"a": a, "b": b} {
		recs := ring.Records()
		if len(recs) != 1 || recs[0].Message != "hello" {
			t.Errorf("backend %s records = %v, want hello", name, recs)
		}
	}
}
