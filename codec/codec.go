// Package codec encodes clustering reports for drivers that print, log or
// ship them.
//
// Reports are plain structs with JSON tags; the codec only decides which
// JSON implementation produces the bytes.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name ("json" or "go-json").
func ByName(name string) (Codec, error) {
	switch name {
	case "json":
		return JSON{}, nil
	case "go-json":
		return GoJSON{}, nil
	default:
		return nil, fmt.Errorf("unknown codec: %q", name)
	}
}

// Default is the codec used when none is given.
var Default Codec = GoJSON{}
