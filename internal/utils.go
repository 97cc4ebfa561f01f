package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// FormatSlice renders a slice in bracketed, comma-separated form, like
// "[1, 2, 3]". An empty or nil slice renders as "[]".
func FormatSlice[T any](s []T) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(']')
	return b.String()
}

// FprintSlice Write the FormatSlice rendering of s to w, followed by a newline
func FprintSlice[T any](w io.Writer, s []T) error {
	_, err := fmt.Fprintln(w, FormatSlice(s))
	return err
}

// JSONSlice Render s as a JSON array
func JSONSlice[T any](s []T) ([]byte, error) {
	if s == nil {
		s = []T{}
	}
	return json.Marshal(s)
}
