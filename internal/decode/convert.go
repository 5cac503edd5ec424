package decode

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
)

// maxOrdinal is the ordinal of 9999-12-31, the last representable date.
const maxOrdinal = 3652059

var ordinalEpoch = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

func missing(path string) error {
	return openapierrors.Required(path, in, nil)
}

// convert applies the conversion rules for t to raw. path names the value in
// error messages.
func convert(t *Type, raw any, path string) (any, error) {
	switch t.kind {
	case KindAny:
		return raw, nil
	case KindUnion:
		return convertUnion(t, raw, path)
	case KindRecord:
		return convertRecord(t, raw, path)
	case KindList:
		return convertList(t, raw, path)
	case KindSet:
		return convertSet(t, raw, path)
	case KindTuple:
		return convertTuple(t, raw, path)
	case KindMap:
		return convertMap(t, raw, path)
	case KindDateTime:
		return convertDateTime(t, raw, path)
	case KindDate:
		return convertDate(t, raw, path)
	case KindFloat:
		if f, ok := asFloat(raw); ok {
			return f, nil
		}
	case KindInt:
		if i, ok := asInt(raw); ok {
			return i, nil
		}
	case KindString:
		if s, ok := raw.(string); ok {
			return s, nil
		}
	case KindBool:
		if b, ok := raw.(bool); ok {
			return b, nil
		}
	case KindNull:
		if raw == nil {
			return nil, nil
		}
	}
	return nil, invalidType(path, t, raw)
}

func convertUnion(t *Type, raw any, path string) (any, error) {
	if raw == nil && t.Nullable() {
		return nil, nil
	}
	var (
		tried   int
		lastErr error
	)
	for _, member := range t.args {
		if member.kind == KindNull {
			continue
		}
		v, err := convert(member, raw, path)
		if err == nil {
			return v, nil
		}
		tried++
		lastErr = err
	}
	// An optional value keeps the detail of its only candidate.
	if tried == 1 && raw != nil {
		return nil, lastErr
	}
	return nil, invalidType(path, t, raw)
}

func convertRecord(t *Type, raw any, path string) (any, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, invalidType(path, t, raw)
	}
	obj, verr := t.schema.decodeObject(m)
	if verr != nil {
		return nil, verr
	}
	return t.schema.instance(obj), nil
}

func convertList(t *Type, raw any, path string) (any, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, invalidType(path, t, raw)
	}
	if len(t.args) == 0 {
		return items, nil
	}

	out := make([]any, len(items))
	for i, item := range items {
		v, err := convert(t.args[0], item, indexPath(path, i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func convertSet(t *Type, raw any, path string) (any, error) {
	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case SetValue:
		items = v.Values()
	default:
		return nil, invalidType(path, t, raw)
	}

	out := make(SetValue, len(items))
	for i, item := range items {
		p := indexPath(path, i)
		v := item
		if len(t.args) == 1 {
			var err error
			if v, err = convert(t.args[0], item, p); err != nil {
				return nil, err
			}
		}
		if !hashable(v) {
			return nil, errors.Wrapf(invalidType(p, t, item), "unhashable set element")
		}
		out[v] = struct{}{}
	}
	return out, nil
}

func convertTuple(t *Type, raw any, path string) (any, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, invalidType(path, t, raw)
	}
	if len(t.args) == 0 {
		return items, nil
	}
	if len(items) != len(t.args) {
		return nil, errors.Wrapf(invalidType(path, t, raw),
			"expected %d elements, got %d", len(t.args), len(items))
	}

	out := make([]any, len(items))
	for i, item := range items {
		v, err := convert(t.args[i], item, indexPath(path, i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func convertMap(t *Type, raw any, path string) (any, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, invalidType(path, t, raw)
	}
	if len(t.args) == 0 {
		return m, nil
	}

	keyType, valueType := t.args[0], t.args[1]
	out := make(map[string]any, len(m))
	for k, item := range m {
		ck, err := convert(keyType, k, path)
		if err != nil {
			return nil, err
		}
		key, ok := ck.(string)
		if !ok {
			return nil, invalidType(path, keyType, k)
		}
		v, err := convert(valueType, item, path+"."+k)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

func convertDateTime(t *Type, raw any, path string) (any, error) {
	switch v := raw.(type) {
	case string:
		if v == "" {
			return nil, invalidType(path, t, raw)
		}
		ts, err := parseDateTime(v)
		if err != nil {
			return nil, errors.WithSecondaryError(invalidType(path, t, raw), err)
		}
		return ts, nil
	default:
		if i, ok := asInt(raw); ok {
			return time.Unix(i, 0).UTC(), nil
		}
		if f, ok := asFloat(raw); ok && !math.IsInf(f, 0) && !math.IsNaN(f) {
			sec, frac := math.Modf(f)
			return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC(), nil
		}
	}
	return nil, invalidType(path, t, raw)
}

// basicDateTimeLayouts are ISO-8601 forms strfmt does not accept: basic
// format and offsets without a colon. Fractional seconds are accepted by
// time.Parse after the seconds field.
var basicDateTimeLayouts = []string{
	"2006-01-02T15:04:05Z0700",
	"20060102T150405Z0700",
	"20060102T150405Z07:00",
}

// parseDateTime parses an ISO-8601 timestamp and normalizes it to UTC so
// equal instants compare equal.
func parseDateTime(s string) (time.Time, error) {
	dt, err := strfmt.ParseDateTime(s)
	if err == nil {
		return time.Time(dt).UTC(), nil
	}
	for _, layout := range basicDateTimeLayouts {
		if ts, perr := time.Parse(layout, s); perr == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, err
}

func convertDate(t *Type, raw any, path string) (any, error) {
	if s, ok := raw.(string); ok {
		var d strfmt.Date
		if s == "" {
			return nil, invalidType(path, t, raw)
		}
		if err := d.UnmarshalText([]byte(s)); err != nil {
			return nil, errors.WithSecondaryError(invalidType(path, t, raw), err)
		}
		return d, nil
	}

	n, ok := asInt(raw)
	if !ok || n < 1 || n > maxOrdinal {
		return nil, invalidType(path, t, raw)
	}
	return strfmt.Date(ordinalEpoch.AddDate(0, 0, int(n-1))), nil
}

// asInt accepts integral JSON numbers and native Go integers.
func asInt(raw any) (int64, bool) {
	switch v := raw.(type) {
	case json.Number:
		i, err := v.Int64()
		return i, err == nil
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	}
	return 0, false
}

// asFloat accepts every JSON number, widening integers.
func asFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return float64(i), true
		}
		f, err := v.Float64()
		return f, err == nil
	case float64:
		return v, true
	case float32:
		return float64(v), true
	}
	if i, ok := asInt(raw); ok {
		return float64(i), true
	}
	return 0, false
}

func hashable(v any) bool {
	switch v.(type) {
	case nil, string, bool, int64, float64, json.Number, time.Time, strfmt.Date, int, int32, float32:
		return true
	}
	return false
}

func indexPath(path string, i int) string {
	return path + "." + strconv.Itoa(i)
}
