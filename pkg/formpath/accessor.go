package formpath

import (
	"fmt"
	"reflect"
	"strconv"
)

// Get returns the value stored at path and whether it exists.
// Maps with string keys and slices or arrays of any element type are traversed;
// every other value ends the walk.
func Get(tree any, path Path) (any, bool) {
	cur := tree
	for _, seg := range path {
		next, ok := child(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Lookup is Get for a path in dot/bracket notation. Malformed paths are reported
// as missing values.
func Lookup(tree any, path string) (any, bool) {
	p, err := Parse(path)
	if err != nil {
		return nil, false
	}
	return Get(tree, p)
}

func child(container any, seg Segment) (any, bool) {
	switch c := container.(type) {
	case nil:
		return nil, false
	case map[string]any:
		if seg.isIndex {
			v, ok := c[strconv.Itoa(seg.index)]
			return v, ok
		}
		v, ok := c[seg.key]
		return v, ok
	case []any:
		i, ok := seg.asIndex()
		if !ok || i >= len(c) {
			return nil, false
		}
		return c[i], true
	}

	rv := reflect.ValueOf(container)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		i, ok := seg.asIndex()
		if !ok || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String || seg.isIndex {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(seg.key).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	}
	return nil, false
}

// Set returns a copy of tree with value stored at path. The input tree is never
// modified: each container along the path is copied, everything else is shared.
// A nil tree is treated as empty.
func Set(tree map[string]any, path Path, value any) (map[string]any, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	if path[0].isIndex {
		return nil, fmt.Errorf("%w: %s: root is a map, got index segment", ErrShapeMismatch, path)
	}
	out, err := setIn(tree, path, 0, value)
	if err != nil {
		return nil, err
	}
	return out.(map[string]any), nil
}

// SetString is Set for a path in dot/bracket notation.
func SetString(tree map[string]any, path string, value any) (map[string]any, error) {
	p, err := Parse(path)
	if err != nil {
		return nil, err
	}
	return Set(tree, p, value)
}

func setIn(container any, path Path, depth int, value any) (any, error) {
	if depth == len(path) {
		return value, nil
	}
	seg := path[depth]

	// Absent containers are created with the shape the segment asks for.
	if container == nil {
		if seg.isIndex {
			container = []any(nil)
		} else {
			container = map[string]any(nil)
		}
	}

	switch c := generic(container).(type) {
	case map[string]any:
		if seg.isIndex {
			return nil, fmt.Errorf("%w: %s: index %d into a map", ErrShapeMismatch, path[:depth+1], seg.index)
		}
		next, err := setIn(c[seg.key], path, depth+1, value)
		if err != nil {
			return nil, err
		}
		cp := make(map[string]any, len(c)+1)
		for k, v := range c {
			cp[k] = v
		}
		cp[seg.key] = next
		return cp, nil

	case []any:
		i, ok := seg.asIndex()
		if !ok {
			return nil, fmt.Errorf("%w: %s: key %q into a sequence", ErrShapeMismatch, path[:depth+1], seg.key)
		}
		if i < 0 {
			return nil, fmt.Errorf("%w: %d", ErrNegativeIndex, i)
		}
		if i > MaxIndex {
			return nil, fmt.Errorf("%w: %s: %d exceeds %d", ErrIndexOutOfRange, path[:depth+1], i, MaxIndex)
		}
		var existing any
		if i < len(c) {
			existing = c[i]
		}
		next, err := setIn(existing, path, depth+1, value)
		if err != nil {
			return nil, err
		}
		size := max(len(c), i+1)
		cp := make([]any, size)
		copy(cp, c)
		cp[i] = next
		return cp, nil
	}

	return nil, fmt.Errorf("%w: %s: cannot descend into %T", ErrShapeMismatch, path[:depth+1], container)
}

// generic turns typed sequences into []any and string-keyed maps into
// map[string]any, so Set accepts every container Get reads. Elements are
// shared, not copied.
func generic(container any) any {
	switch container.(type) {
	case map[string]any, []any:
		return container
	}

	rv := reflect.ValueOf(container)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []any(nil)
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return container
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out
	}
	return container
}

// Clone returns a deep copy of a form-data tree. Maps, slices and arrays of any
// type are copied recursively; other values, pointers included, are copied by
// assignment.
func Clone(tree map[string]any) map[string]any {
	if tree == nil {
		return map[string]any{}
	}
	return cloneValue(tree).(map[string]any)
}

// CloneValue deep-copies a single value the way Clone copies a tree.
func CloneValue(v any) any {
	return cloneValue(v)
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		cp := make(map[string]any, len(t))
		for k, val := range t {
			cp[k] = cloneValue(val)
		}
		return cp
	case []any:
		if t == nil {
			return t
		}
		cp := make([]any, len(t))
		for i, val := range t {
			cp[i] = cloneValue(val)
		}
		return cp
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return v
	}
	return cloneReflect(rv).Interface()
}

func cloneReflect(rv reflect.Value) reflect.Value {
	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return rv
		}
		out := reflect.New(rv.Type()).Elem()
		out.Set(cloneReflect(rv.Elem()))
		return out
	case reflect.Map:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), cloneReflect(iter.Value()))
		}
		return out
	case reflect.Slice:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := range rv.Len() {
			out.Index(i).Set(cloneReflect(rv.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := range rv.Len() {
			out.Index(i).Set(cloneReflect(rv.Index(i)))
		}
		return out
	}
	return rv
}
