package reader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// ReadJSON decodes an array of objects. A single object is treated as a
// one-element array. Numbers are kept as json.Number so amounts are not
// rounded through float64.
func ReadJSON(r io.Reader) (Records, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return DecodeJSON(data)
}

func DecodeJSON(data []byte) (Records, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON: %w", ErrParse, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: malformed JSON: trailing data after value", ErrParse)
	}

	switch t := v.(type) {
	case map[string]any:
		return Records{Record(t)}, nil
	case []any:
		out := make(Records, 0, len(t))
		for i, el := range t {
			obj, ok := el.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is not an object", ErrParse, i)
			}
			out = append(out, Record(obj))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: expected an object or an array of objects", ErrParse)
	}
}
