// ABOUTME: Ordered JSON object model for package.json contents
// ABOUTME: Keeps key insertion order so rewrites never reshuffle the file

package manifest

// Document is a JSON object that remembers the order its keys were added in.
// Nested objects decoded from disk are also *Document values.
type Document struct {
	keys   []string
	values map[string]any
}

// New returns an empty document.
func New() *Document {
	return &Document{values: make(map[string]any)}
}

// Len returns the number of keys.
func (d *Document) Len() int {
	return len(d.keys)
}

// Keys returns the keys in order. The slice is a copy.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Set stores value under key. An existing key keeps its position.
func (d *Document) Set(key string, value any) {
	if d.values == nil {
		d.values = make(map[string]any)
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Delete removes key and returns its previous value.
func (d *Document) Delete(key string) (any, bool) {
	v, ok := d.values[key]
	if !ok {
		return nil, false
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	return v, true
}

// Object returns the nested document stored under key, if there is one.
func (d *Document) Object(key string) (*Document, bool) {
	v, ok := d.values[key]
	if !ok {
		return nil, false
	}
	obj, ok := v.(*Document)
	return obj, ok
}

// String returns the string stored under key, if there is one.
func (d *Document) String(key string) (string, bool) {
	v, ok := d.values[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// MergeShallow copies every top-level key of partial into d. A key already
// present in d is replaced wholesale; nested objects are not merged.
func (d *Document) MergeShallow(partial *Document) {
	if partial == nil {
		return
	}
	for _, k := range partial.keys {
		d.Set(k, partial.values[k])
	}
}

// Range calls fn for each key in order until fn returns false.
func (d *Document) Range(fn func(key string, value any) bool) {
	for _, k := range d.keys {
		if !fn(k, d.values[k]) {
			return
		}
	}
}
