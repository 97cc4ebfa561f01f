package internal

import (
	"golang.org/x/exp/rand"
)

// SeededReader implements the io.Reader interface and generates a deterministic
// byte stream from a seeded random source, one draw per byte.
type SeededReader struct {
	rand *rand.Rand
}

// NewSeededReader creates a new SeededReader drawing from src.
func NewSeededReader(src rand.Source) *SeededReader {
	return &SeededReader{
		rand: rand.New(src),
	}
}

// Read generates the next bytes of the stream and writes them into the
// provided buffer. The buffer is always filled completely; Read never fails.
func (sr *SeededReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(sr.rand.Intn(256)) // Generate a random byte between 0 and 255
	}
	return len(p), nil
}
