package confluence

import (
	"bytes"
	"encoding/json"
	"maps"
	"math"
	"slices"
	"strconv"
)

// Raw is a decoded JSON object as handed over by the REST client.
type Raw = map[string]any

// stringField returns data[key] as a string. Integral numbers are formatted in
// base 10, every other type counts as absent.
func stringField(data Raw, key string) *string {
	v, ok := data[key]
	if !ok {
		return nil
	}
	return coerceString(v)
}

func coerceString(v any) *string {
	switch t := v.(type) {
	case string:
		return &t
	case json.Number:
		n, ok := numberInt64(t)
		if !ok {
			return nil
		}
		s := strconv.FormatInt(n, 10)
		return &s
	case float64:
		n, ok := floatInt64(t)
		if !ok {
			return nil
		}
		s := strconv.FormatInt(n, 10)
		return &s
	case int:
		s := strconv.Itoa(t)
		return &s
	case int64:
		s := strconv.FormatInt(t, 10)
		return &s
	}
	return nil
}

// nonEmptyString returns data[key] only when it is a non-empty string.
func nonEmptyString(data Raw, key string) *string {
	s, ok := data[key].(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

func int64Field(data Raw, key string) *int64 {
	v, ok := data[key]
	if !ok {
		return nil
	}
	return coerceInt64(v)
}

func coerceInt64(v any) *int64 {
	var n int64
	switch t := v.(type) {
	case float64:
		i, ok := floatInt64(t)
		if !ok {
			return nil
		}
		n = i
	case json.Number:
		i, ok := numberInt64(t)
		if !ok {
			return nil
		}
		n = i
	case int:
		n = int64(t)
	case int64:
		n = t
	case string:
		i, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return nil
		}
		n = i
	default:
		return nil
	}
	return &n
}

// floatInt64 converts integral values inside the int64 range.
// float64(math.MaxInt64) rounds up to 2^63, hence the >= bound.
func floatInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// numberInt64 accepts the same values as floatInt64 so that decoded JSON and
// pre-decoded maps agree. Exponent forms like 1e3 are integral too.
func numberInt64(n json.Number) (int64, bool) {
	if i, err := n.Int64(); err == nil {
		return i, true
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return floatInt64(f)
}

// objectField returns data[key] when it is a JSON object, nil otherwise.
func objectField(data Raw, key string) Raw {
	obj, _ := data[key].(map[string]any)
	return obj
}

// decodeRaw decodes a JSON object keeping numbers as json.Number so that large
// sizes survive untouched. JSON null decodes to a nil map.
func decodeRaw(b []byte) (Raw, error) {
	var data Raw
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	return data, nil
}

// optional unwraps p for the simplified views, where absence is an untyped nil.
func optional[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func sortedKeys(data Raw) []string {
	return slices.Sorted(maps.Keys(data))
}
