// Package amount holds the request type for money amounts.
package amount

import (
	"bytes"
	"encoding/json"

	"github.com/danielgtaylor/huma/v2"
)

// Input is an amount sent either as a JSON string or a JSON number. The text
// is handed to the ledger unchanged, where unparsable values count as 0.
type Input string

func (in *Input) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*in = ""
		return nil
	}

	switch c := data[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*in = Input(s)
	case c == '-' || (c >= '0' && c <= '9'):
		*in = Input(data)
	default:
		*in = ""
	}
	return nil
}

func (in Input) String() string {
	return string(in)
}

func (Input) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{
		Description: "Decimal amount as a string or a number; unparsable values count as 0",
		OneOf: []*huma.Schema{
			{Type: huma.TypeString},
			{Type: huma.TypeNumber},
		},
	}
}
