package pack

import (
	"bytes"
	"encoding/json"
)

// MarshalIndent encodes v the way every document this module writes is
// encoded: two-space indentation, and <, > and & left unescaped since they
// appear verbatim in filter patterns.
func MarshalIndent(v interface{}) ([]byte, error) {
	return encode(v, "  ")
}

func encode(v interface{}, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
