package pack

import (
	"encoding/json"
	"fmt"
	"os"
)

// ParseHeader decodes only the required header fields of a pack document.
// Useful when the rest of the document does not matter, as for the registry.
func ParseHeader(data []byte) (*Header, error) {
	var h Header
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("parsing pack header: %w", err)
	}
	return &h, nil
}

// ParseHeaderFile reads a pack document from disk and decodes its header.
func ParseHeaderFile(path string) (*Header, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	h, err := ParseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}

// ParseHeaderLenient decodes the header fields of any JSON object. A field
// of the wrong type reads as empty, and non-string tags are dropped. Only a
// document that is not a JSON object is an error.
func ParseHeaderLenient(data []byte) (*Header, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("parsing pack header: %w", err)
	}

	h := &Header{
		ID:          stringField(fields["id"]),
		Name:        stringField(fields["name"]),
		Version:     stringField(fields["version"]),
		Author:      stringField(fields["author"]),
		Description: stringField(fields["description"]),
	}

	var tags []json.RawMessage
	if raw, ok := fields["tags"]; ok && json.Unmarshal(raw, &tags) == nil {
		for _, t := range tags {
			var v interface{}
			if json.Unmarshal(t, &v) != nil {
				continue
			}
			if tag, ok := v.(string); ok {
				h.Tags = append(h.Tags, tag)
			}
		}
	}
	return h, nil
}

// ParseHeaderFileLenient reads a pack document from disk and decodes its
// header with ParseHeaderLenient.
func ParseHeaderFileLenient(path string) (*Header, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	h, err := ParseHeaderLenient(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}

func stringField(raw json.RawMessage) string {
	var s string
	if raw == nil || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// Parse decodes a full pack document.
func Parse(data []byte) (*Pack, error) {
	var p Pack
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing pack: %w", err)
	}
	return &p, nil
}

// ParseFile reads and decodes a full pack document.
func ParseFile(path string) (*Pack, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Marshal encodes a pack the way pack.json files are written: two-space
// indentation, no HTML escaping.
func Marshal(p *Pack) ([]byte, error) {
	return MarshalIndent(p)
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
