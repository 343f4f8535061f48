package domain

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON encodes materials as a JSON object in declaration order:
//
//	{"primary": "Premium Wool Blend", "lining": "Viscose"}
func (m Materials) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, mat := range m {
		if i > 0 {
			buf.WriteString(", ")
		}
		key, err := json.Marshal(mat.Part)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(mat.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
