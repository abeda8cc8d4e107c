package service

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// JSONCodec carries plain Go structs over Connect as JSON. It replaces
// Connect's default protobuf JSON codec. Numbers are decoded as json.Number
// so entry amounts keep their exact textual form until admission, and
// decimal amounts are written as JSON numbers.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to decode message: %w", err)
	}
	return nil
}
