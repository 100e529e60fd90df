// Package sanitize turns untrusted documents read from the document store
// into validated models.
//
// Malformed values are coerced or replaced by defaults. A document is only
// rejected when it is not a structured record at all. Nothing in this
// package returns an error or panics on bad input.
package sanitize

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Raw is an untrusted document as read from the document store.
//
// Downstream code never inspects a Raw directly, it calls Note or User to
// obtain a validated model.
type Raw struct {
	data []byte
}

// RawJSON wraps the JSON encoding of a stored document.
func RawJSON(data []byte) Raw {
	return Raw{data: data}
}

// record decodes the raw document into a field map. It reports false if the
// document is not a JSON object.
func (r Raw) record() (map[string]any, bool) {
	trimmed := bytes.TrimSpace(r.data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

// text converts a scalar field to trimmed text. Missing, null, empty and
// structured values yield "".
func text(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case bool:
		if !t {
			return ""
		}
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// textOr returns the text of v, or fallback if it is empty.
func textOr(v any, fallback string) string {
	if s := text(v); s != "" {
		return s
	}
	return fallback
}
