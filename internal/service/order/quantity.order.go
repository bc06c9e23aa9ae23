package order

import (
	"bytes"
	"encoding/json"
)

// Quantity is the raw text of a quantity field. In JSON it may be sent as a
// string or as a number; numbers keep their literal text. Any other JSON
// value reads as empty and falls back to the default quantity.
type Quantity string

func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*q = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*q = Quantity(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*q = Quantity(n.String())
	default:
		*q = ""
	}
	return nil
}

func (q Quantity) String() string {
	return string(q)
}
