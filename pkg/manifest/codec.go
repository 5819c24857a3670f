// ABOUTME: Canonical package.json codec built on easyjson's lexer and writer
// ABOUTME: Two-space indent, trailing newline, key order and number text preserved

package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

const indent = "  "

// errNotObject is returned when the top-level JSON value is not an object.
var errNotObject = errors.New("manifest root must be a JSON object")

// Parse decodes a JSON object, keeping key order at every nesting level.
func Parse(data []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errNotObject
	}

	l := &jlexer.Lexer{Data: data}
	doc := decodeObject(l)
	l.Consumed()
	if err := l.Error(); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return doc, nil
}

// Render encodes doc in the canonical on-disk form.
func Render(doc *Document) ([]byte, error) {
	if doc == nil {
		doc = New()
	}
	w := &jwriter.Writer{NoEscapeHTML: true}
	writeValue(w, doc, 0)
	w.RawByte('\n')
	return w.BuildBytes()
}

// ParseValue decodes any single JSON value. Objects become *Document.
func ParseValue(data []byte) (any, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("parsing value: invalid JSON %q", data)
	}
	l := &jlexer.Lexer{Data: data}
	v := decodeValue(l)
	l.Consumed()
	if err := l.Error(); err != nil {
		return nil, fmt.Errorf("parsing value: %w", err)
	}
	return v, nil
}

// RenderValue encodes v the way it would appear inside a manifest, without
// a trailing newline.
func RenderValue(v any) ([]byte, error) {
	w := &jwriter.Writer{NoEscapeHTML: true}
	writeValue(w, v, 0)
	return w.BuildBytes()
}

func decodeObject(l *jlexer.Lexer) *Document {
	doc := New()
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.String()
		l.WantColon()
		doc.Set(key, decodeValue(l))
		l.WantComma()
	}
	l.Delim('}')
	return doc
}

func decodeValue(l *jlexer.Lexer) any {
	switch {
	case l.IsDelim('{'):
		return decodeObject(l)
	case l.IsDelim('['):
		items := []any{}
		l.Delim('[')
		for !l.IsDelim(']') {
			items = append(items, decodeValue(l))
			l.WantComma()
		}
		l.Delim(']')
		return items
	}
	return decodeScalar(l.Raw())
}

// decodeScalar turns a raw JSON literal into its Go value. Numbers stay as
// json.Number so their original text survives a rewrite.
func decodeScalar(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	switch raw[0] {
	case '"':
		sl := &jlexer.Lexer{Data: raw}
		return sl.String()
	case 't':
		return true
	case 'f':
		return false
	case 'n':
		return nil
	}
	return json.Number(string(raw))
}

func writeIndent(w *jwriter.Writer, depth int) {
	w.RawString(strings.Repeat(indent, depth))
}

func writeValue(w *jwriter.Writer, v any, depth int) {
	switch val := v.(type) {
	case nil:
		w.RawString("null")
	case *Document:
		writeObject(w, val, depth)
	case map[string]any:
		writeObject(w, fromMap(val), depth)
	case []any:
		writeArray(w, val, depth)
	case []string:
		items := make([]any, len(val))
		for i, s := range val {
			items[i] = s
		}
		writeArray(w, items, depth)
	case string:
		w.String(val)
	case bool:
		w.Bool(val)
	case json.Number:
		w.RawString(val.String())
	case int:
		w.Int(val)
	case int64:
		w.Int64(val)
	case float64:
		w.Float64(val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			w.Raw(nil, err)
			return
		}
		writeValue(w, decodeValue(&jlexer.Lexer{Data: data}), depth)
	}
}

func writeObject(w *jwriter.Writer, doc *Document, depth int) {
	if doc.Len() == 0 {
		w.RawString("{}")
		return
	}
	w.RawString("{\n")
	for i, k := range doc.keys {
		writeIndent(w, depth+1)
		w.String(k)
		w.RawString(": ")
		writeValue(w, doc.values[k], depth+1)
		if i < len(doc.keys)-1 {
			w.RawByte(',')
		}
		w.RawByte('\n')
	}
	writeIndent(w, depth)
	w.RawByte('}')
}

func writeArray(w *jwriter.Writer, items []any, depth int) {
	if len(items) == 0 {
		w.RawString("[]")
		return
	}
	w.RawString("[\n")
	for i, item := range items {
		writeIndent(w, depth+1)
		writeValue(w, item, depth+1)
		if i < len(items)-1 {
			w.RawByte(',')
		}
		w.RawByte('\n')
	}
	writeIndent(w, depth)
	w.RawByte(']')
}

// fromMap converts a plain map into a document with sorted keys, so callers
// passing map literals still get deterministic output.
func fromMap(m map[string]any) *Document {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	doc := New()
	for _, k := range keys {
		doc.Set(k, m[k])
	}
	return doc
}
