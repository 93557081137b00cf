// Package querysync maps table interactions (page, column filters, sort,
// search) onto URL query parameters and back, so list state can always be
// derived from the URL.
package querysync

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Filters maps a column key to the set of selected values.
// A key with no values means the column is not filtered.
type Filters map[string][]string

// Get returns the selected values for a column, never nil.
func (f Filters) Get(key string) []string {
	if v := f[key]; v != nil {
		return v
	}
	return []string{}
}

// Has reports whether value is selected for the column.
func (f Filters) Has(key, value string) bool {
	for _, v := range f[key] {
		if v == value {
			return true
		}
	}
	return false
}

// Clone returns a deep copy with empty columns removed.
func (f Filters) Clone() Filters {
	out := make(Filters, len(f))
	for k, vs := range f {
		if len(vs) == 0 {
			continue
		}
		out[k] = append([]string(nil), vs...)
	}
	return out
}

// EncodeFilters serializes filters as a JSON object of string arrays. Columns
// without values are omitted and keys are written in sorted order, so equal
// filter sets always produce the same query string.
func EncodeFilters(f Filters) (string, error) {
	keys := make([]string, 0, len(f))
	for k, vs := range f {
		if len(vs) > 0 {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return "{}", nil
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return "", err
		}
		vb, err := json.Marshal(f[k])
		if err != nil {
			return "", err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.String(), nil
}

// DecodeFilters parses the "filters" query value. Values may be strings,
// numbers or booleans and are kept in their canonical text form. null and
// empty arrays mean "no filter" for that column. An empty input is an empty
// filter set.
func DecodeFilters(raw string) (Filters, error) {
	out := Filters{}
	if raw == "" {
		return out, nil
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("decode filters: %w", err)
	}

	for key, msg := range decoded {
		values, err := decodeValues(msg)
		if err != nil {
			return nil, fmt.Errorf("decode filters %q: %w", key, err)
		}
		if len(values) > 0 {
			out[key] = values
		}
	}
	return out, nil
}

func decodeValues(msg json.RawMessage) ([]string, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(msg, &items); err != nil {
		return nil, err
	}
	values := make([]string, 0, len(items))
	for _, item := range items {
		var v interface{}
		dec := json.NewDecoder(bytes.NewReader(item))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		switch t := v.(type) {
		case string:
			values = append(values, t)
		case json.Number:
			values = append(values, t.String())
		case bool:
			values = append(values, strconv.FormatBool(t))
		case nil:
			continue
		default:
			return nil, fmt.Errorf("unsupported filter value %s", string(item))
		}
	}
	return values, nil
}
