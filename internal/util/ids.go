package util

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idLength = 12

// NewID generates a prefixed public id, e.g. "node-V1StGXR8_Z5j".
// Prefixes keep node and edge ids visually distinct in exports and logs.
func NewID(prefix string) (string, error) {
	id, err := gonanoid.New(idLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	if prefix == "" {
		return id, nil
	}
	return prefix + "-" + id, nil
}
