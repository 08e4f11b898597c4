package util

import (
	"strings"
	"testing"
)

func TestNewID(t *testing.T) {
	id, err := NewID("node")
	if err != nil {
		t.Fatalf("NewID returned error: %v", err)
	}
	if !strings.HasPrefix(id, "node-") {
		t.Errorf("id %q missing prefix", id)
	}
	if len(id) != len("node-")+idLength {
		t.Errorf("id %q has unexpected length", id)
	}

	other, err := NewID("node")
	if err != nil {
		t.Fatalf("NewID returned error: %v", err)
	}
	if id == other {
		t.Errorf("two ids collided: %q", id)
	}
}

func TestNewIDNoPrefix(t *testing.T) {
	id, err := NewID("")
	if err != nil {
		t.Fatalf("NewID returned error: %v", err)
	}
	if len(id) != idLength {
		t.Errorf("unprefixed id %q has unexpected length", id)
	}
}
