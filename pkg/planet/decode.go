package planet

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// decoder fills a Go value from JSON one field, list item and map entry at a time.
//
// A strict decoder stops at the first value that does not fit and remembers its path. A
// lenient decoder skips it: the field keeps its current value, and a list item that is not
// an object is dropped while its neighbours are kept.
type decoder struct {
	strict bool
	err    error
	path   string
}

func (d *decoder) stopped() bool {
	return d.strict && d.err != nil
}

func (d *decoder) fail(path string, err error) bool {
	if d.err == nil {
		d.err, d.path = err, path
	}
	return false
}

func (d *decoder) value(v reflect.Value, raw json.RawMessage, path string) bool {
	if d.stopped() {
		return false
	}
	if isNull(raw) {
		return true
	}
	switch v.Kind() {
	case reflect.Struct:
		return d.object(v, raw, path)
	case reflect.Pointer:
		fresh := reflect.New(v.Type().Elem())
		if !v.IsNil() {
			fresh.Elem().Set(v.Elem())
		}
		if !d.value(fresh.Elem(), raw, path) {
			return false
		}
		v.Set(fresh)
		return true
	case reflect.Slice:
		return d.list(v, raw, path)
	case reflect.Map:
		return d.mapping(v, raw, path)
	}
	return d.leaf(v, raw, path)
}

func (d *decoder) object(v reflect.Value, raw json.RawMessage, path string) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return d.fail(path, err)
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := jsonName(t.Field(i))
		fr, ok := fields[name]
		if name == "" || !ok {
			continue
		}
		d.value(v.Field(i), fr, join(path, name))
		if d.stopped() {
			return false
		}
	}
	return true
}

func (d *decoder) list(v reflect.Value, raw json.RawMessage, path string) bool {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return d.fail(path, err)
	}
	out := reflect.MakeSlice(v.Type(), 0, len(items))
	for i, item := range items {
		elem := reflect.New(v.Type().Elem()).Elem()
		if d.item(elem, item, join(path, strconv.Itoa(i))) {
			out = reflect.Append(out, elem)
		}
		if d.stopped() {
			return false
		}
	}
	v.Set(out)
	return true
}

func (d *decoder) mapping(v reflect.Value, raw json.RawMessage, path string) bool {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return d.fail(path, err)
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := reflect.MakeMapWithSize(v.Type(), len(entries))
	for _, k := range keys {
		elem := reflect.New(v.Type().Elem()).Elem()
		if d.item(elem, entries[k], join(path, k)) {
			out.SetMapIndex(reflect.ValueOf(k).Convert(v.Type().Key()), elem)
		}
		if d.stopped() {
			return false
		}
	}
	v.Set(out)
	return true
}

// item decodes one list item or map entry, starting from the per-row defaults.
func (d *decoder) item(elem reflect.Value, raw json.RawMessage, path string) bool {
	rowDefaults(elem)
	return d.value(elem, raw, path)
}

func (d *decoder) leaf(v reflect.Value, raw json.RawMessage, path string) bool {
	tmp := reflect.New(v.Type())
	tmp.Elem().Set(v)
	if err := json.Unmarshal(raw, tmp.Interface()); err != nil {
		return d.fail(path, err)
	}
	v.Set(tmp.Elem())
	return true
}

// Row types fill in their per-row defaults when decoded from an empty object.
func rowDefaults(v reflect.Value) {
	if v.Kind() != reflect.Struct {
		return
	}
	if u, ok := v.Addr().Interface().(json.Unmarshaler); ok {
		_ = u.UnmarshalJSON([]byte("{}"))
	}
}

func jsonName(f reflect.StructField) string {
	if !f.IsExported() {
		return ""
	}
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
