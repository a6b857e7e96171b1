package httpapi

import (
	"encoding/json"
	"fmt"
)

// StringID decodes an identifier the API serializes either as a JSON number
// or a string, depending on the endpoint revision. Requests always send it
// as a query-string value, so string is the canonical form here.
type StringID string

func (s *StringID) UnmarshalJSON(raw []byte) error {
	if len(raw) > 0 && raw[0] == '"' {
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		*s = StringID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return fmt.Errorf("id is neither string nor number: %w", err)
	}
	*s = StringID(n.String())
	return nil
}

func (s StringID) String() string { return string(s) }
