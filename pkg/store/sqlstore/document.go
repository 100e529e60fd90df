package sqlstore

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
	"time"

	"github.com/nremp/dashboard/pkg/store"
	"github.com/tidwall/gjson"
	"gorm.io/datatypes"
)

// document is a stored JSON document.
type document struct {
	Collection string         `gorm:"primaryKey"`
	Key        string         `gorm:"primaryKey;column:doc_key"`
	Body       datatypes.JSON `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (document) TableName() string {
	return "documents"
}

// rank orders JSON value types the same way for every snapshot: missing and
// null values first, then booleans, numbers, strings and structured values.
func rank(r gjson.Result) int {
	switch r.Type {
	case gjson.Null:
		return 0
	case gjson.False:
		return 1
	case gjson.True:
		return 2
	case gjson.Number:
		return 3
	case gjson.String:
		return 4
	default:
		return 5
	}
}

// sortDocuments orders documents ascending by the child orderBy, ties and
// an empty orderBy fall back to the key.
func sortDocuments(docs []document, orderBy string) {
	if orderBy == "" {
		sort.SliceStable(docs, func(i, j int) bool {
			return docs[i].Key < docs[j].Key
		})
		return
	}

	values := make([]gjson.Result, len(docs))
	for i, d := range docs {
		values[i] = gjson.GetBytes(d.Body, orderBy)
	}

	idx := make([]int, len(docs))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		va, vb := values[idx[a]], values[idx[b]]
		ra, rb := rank(va), rank(vb)
		if ra != rb {
			return ra < rb
		}

		switch va.Type {
		case gjson.Number:
			if va.Num != vb.Num && !math.IsNaN(va.Num) {
				return va.Num < vb.Num
			}
		case gjson.String:
			if va.Str != vb.Str {
				return va.Str < vb.Str
			}
		}

		return docs[idx[a]].Key < docs[idx[b]].Key
	})

	sorted := make([]document, len(docs))
	for i, j := range idx {
		sorted[i] = docs[j]
	}
	copy(docs, sorted)
}

// resolveServerValues encodes value and replaces all ServerTimestamp
// placeholders with the timestamp returned by now.
func resolveServerValues(value any, now func() int64) ([]byte, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	if !bytes.Contains(encoded, []byte(`".sv"`)) {
		return encoded, nil
	}

	dec := json.NewDecoder(bytes.NewReader(encoded))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil, err
	}

	var ts int64
	resolved := replacePlaceholders(decoded, func() int64 {
		if ts == 0 {
			ts = now()
		}
		return ts
	})

	return json.Marshal(resolved)
}

func replacePlaceholders(v any, ts func() int64) any {
	switch t := v.(type) {
	case map[string]any:
		if store.IsServerTimestamp(t) {
			return ts()
		}
		for k, child := range t {
			t[k] = replacePlaceholders(child, ts)
		}
		return t
	case []any:
		for i, child := range t {
			t[i] = replacePlaceholders(child, ts)
		}
		return t
	default:
		return v
	}
}
