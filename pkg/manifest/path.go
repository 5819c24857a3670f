// ABOUTME: Dotted key paths ("scripts.build") over nested documents
// ABOUTME: Used by the CLI get/set/delete commands

package manifest

import (
	"fmt"
	"strings"
)

// SplitPath splits a dotted path into keys. Empty segments are rejected.
func SplitPath(path string) ([]string, error) {
	keys := strings.Split(path, ".")
	for _, k := range keys {
		if k == "" {
			return nil, fmt.Errorf("invalid key path %q", path)
		}
	}
	return keys, nil
}

// Lookup follows keys through nested documents.
func (d *Document) Lookup(keys ...string) (any, bool) {
	var cur any = d
	for _, k := range keys {
		obj, ok := cur.(*Document)
		if !ok {
			return nil, false
		}
		if cur, ok = obj.Get(k); !ok {
			return nil, false
		}
	}
	return cur, true
}

// SetPath stores value at keys, creating intermediate objects. It fails when
// an intermediate key holds something other than an object.
func (d *Document) SetPath(value any, keys ...string) error {
	if len(keys) == 0 {
		return fmt.Errorf("empty key path")
	}
	obj := d
	for i, k := range keys[:len(keys)-1] {
		next, ok := obj.Get(k)
		if !ok {
			child := New()
			obj.Set(k, child)
			obj = child
			continue
		}
		child, ok := next.(*Document)
		if !ok {
			return fmt.Errorf("%s is not an object", strings.Join(keys[:i+1], "."))
		}
		obj = child
	}
	obj.Set(keys[len(keys)-1], value)
	return nil
}

// DeletePath removes the value at keys and returns it.
func (d *Document) DeletePath(keys ...string) (any, bool) {
	if len(keys) == 0 {
		return nil, false
	}
	parent, ok := d.Lookup(keys[:len(keys)-1]...)
	if !ok {
		return nil, false
	}
	obj, ok := parent.(*Document)
	if !ok {
		return nil, false
	}
	return obj.Delete(keys[len(keys)-1])
}
