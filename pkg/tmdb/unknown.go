package tmdb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Unknown holds JSON members that no struct field claims.
// TMDB adds fields over time; they are kept here instead of failing the decode.
type Unknown map[string]json.RawMessage

// Keys returns the unknown member names in sorted order.
func (u Unknown) Keys() []string {
	keys := make([]string, 0, len(u))
	for k := range u {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var unknownType = reflect.TypeOf(Unknown(nil))

// knownFields caches the JSON member names claimed by each struct type.
var knownFields sync.Map // reflect.Type -> map[string]struct{}

// decodeLenient unmarshals data into v (a pointer to a method-less copy of the
// DTO). Only members whose name exactly matches a struct tag are decoded; the
// rest go to unknown and never reach a field.
func decodeLenient(data []byte, v any, unknown *Unknown) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// not an object: let v report the type mismatch
		return json.Unmarshal(data, v)
	}

	known := fieldsOf(reflect.TypeOf(v).Elem())
	claimed := make(map[string]json.RawMessage, len(raw))
	for name, value := range raw {
		if _, ok := known[name]; ok {
			claimed[name] = value
			continue
		}
		if *unknown == nil {
			*unknown = make(Unknown)
		}
		(*unknown)[name] = value
	}

	subset, err := json.Marshal(claimed)
	if err != nil {
		return err
	}
	return json.Unmarshal(subset, v)
}

func fieldsOf(t reflect.Type) map[string]struct{} {
	if cached, ok := knownFields.Load(t); ok {
		return cached.(map[string]struct{})
	}

	fields := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		fields[name] = struct{}{}
	}

	knownFields.Store(t, fields)
	return fields
}

// UnknownFields walks a decoded DTO graph and returns the dotted path of every
// recorded unknown member, e.g. "credits.cast[0].popularity".
func UnknownFields(v any) []string {
	var paths []string
	collectUnknown(reflect.ValueOf(v), "", &paths)
	sort.Strings(paths)
	return paths
}

func collectUnknown(v reflect.Value, prefix string, paths *[]string) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			collectUnknown(v.Elem(), prefix, paths)
		}
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return
		}
		for i := 0; i < v.Len(); i++ {
			collectUnknown(v.Index(i), fmt.Sprintf("%s[%d]", prefix, i), paths)
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			fv := v.Field(i)
			if f.Type == unknownType {
				for _, k := range fv.Interface().(Unknown).Keys() {
					*paths = append(*paths, joinPath(prefix, k))
				}
				continue
			}
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				name = f.Name
			}
			collectUnknown(fv, joinPath(prefix, name), paths)
		}
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
