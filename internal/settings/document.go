package settings

import (
	"bytes"
	"encoding/json"
	"slices"

	"github.com/propflow/leadboard/models"
)

// Document is a decoded configuration document. It is the raw JSON object
// rather than a closed struct so that keys this application version does
// not know about survive a load/save round-trip untouched.
//
// Numbers are kept as [json.Number] on load so that re-serializing a
// document reproduces the original literals.
type Document map[string]any

// Document keys owned by the store's typed accessors.
const (
	keySearchCriteria  = "search_criteria"
	keyTargetLocations = "target_locations"
	keyPriceRange      = "price_range"
	keyPropertyTypes   = "property_types"
	keyIntegration     = "gohighlevel"
)

// DefaultDocument returns the factory-reset configuration document.
//
// The typed default from [models.DefaultConfiguration] is round-tripped
// through JSON so the result carries the same dynamic shapes (json.Number
// values, map sub-trees) as a document loaded from disk.
func DefaultDocument() Document {
	data, _ := json.Marshal(models.DefaultConfiguration())
	doc, _ := decodeDocument(data)
	return doc
}

func decodeDocument(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// objectAt returns the object stored under key, or nil when the key is
// absent or holds a non-object value. Reading from the returned nil map
// is safe.
func (d Document) objectAt(key string) map[string]any {
	m, _ := d[key].(map[string]any)
	return m
}

// ensureObject returns the object under key, creating it when absent.
// A non-object value under key is replaced by an empty object.
func (d Document) ensureObject(key string) map[string]any {
	if m, ok := d[key].(map[string]any); ok {
		return m
	}
	m := map[string]any{}
	d[key] = m
	return m
}

// stringsAt reads a string sequence under key, tolerating both []string
// (written by mutators in-process) and []any (decoded JSON). A missing key
// or a foreign value yields an empty slice, never nil.
func stringsAt(m map[string]any, key string) []string {
	switch v := m[key].(type) {
	case []string:
		return slices.Clone(v)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

// intAt reads an integer under key, tolerating the numeric shapes a
// document can carry: json.Number after a load, int/int64 after an
// in-process mutation. def is returned when the key is absent or not
// numeric.
func intAt(m map[string]any, key string, def int) int {
	switch v := m[key].(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}
