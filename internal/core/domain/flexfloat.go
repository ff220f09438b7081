package domain

import (
	"encoding/json"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FlexFloat is a float64 that tolerates the mixed numeric representations
// found in shipment documents: doubles, 32/64-bit integers, and strings like
// "12.5". Anything absent or unparseable decodes as zero rather than failing
// the whole document.
type FlexFloat float64

// Float64 returns the underlying value.
func (f FlexFloat) Float64() float64 { return float64(f) }

// UnmarshalJSON accepts a JSON number, a numeric string, or null.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = 0

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*f = FlexFloat(v)
	case string:
		*f = parseFlex(v)
	}
	return nil
}

// MarshalJSON always emits a plain number.
func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

// UnmarshalBSONValue accepts double, int32, int64, string, and null values.
func (f *FlexFloat) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	*f = 0

	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Double:
		*f = FlexFloat(rv.Double())
	case bsontype.Int32:
		*f = FlexFloat(rv.Int32())
	case bsontype.Int64:
		*f = FlexFloat(rv.Int64())
	case bsontype.String:
		*f = parseFlex(rv.StringValue())
	}
	return nil
}

// MarshalBSONValue always writes a double.
func (f FlexFloat) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(float64(f))
}

func parseFlex(s string) FlexFloat {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return FlexFloat(v)
}
