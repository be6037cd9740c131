// Package diffing computes field-level deltas between flat records so a
// reviewer can see exactly what a publish would change.
package diffing

import (
	"fmt"
	"reflect"
	"sort"
)

// Result partitions the union of both records' field names. Every key
// appears in exactly one of the four lists.
type Result struct {
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
	Changed []string `json:"changed"`
	Same    []string `json:"same"`
}

// Diff compares two flat records key by key. Array values are compared as
// sets, so element order never counts as a change. Diff is total: it assumes
// nothing about which keys exist and has no failure mode.
func Diff(oldRecord, newRecord map[string]any) Result {
	res := Result{
		Added:   []string{},
		Removed: []string{},
		Changed: []string{},
		Same:    []string{},
	}

	keys := make(map[string]struct{}, len(oldRecord)+len(newRecord))
	for k := range oldRecord {
		keys[k] = struct{}{}
	}
	for k := range newRecord {
		keys[k] = struct{}{}
	}

	for key := range keys {
		oldVal, inOld := oldRecord[key]
		newVal, inNew := newRecord[key]
		switch {
		case !inOld:
			res.Added = append(res.Added, key)
		case !inNew:
			res.Removed = append(res.Removed, key)
		case equalValues(oldVal, newVal):
			res.Same = append(res.Same, key)
		default:
			res.Changed = append(res.Changed, key)
		}
	}

	sort.Strings(res.Added)
	sort.Strings(res.Removed)
	sort.Strings(res.Changed)
	sort.Strings(res.Same)
	return res
}

func equalValues(a, b any) bool {
	aSet, aIsArray := asSet(a)
	bSet, bIsArray := asSet(b)
	if aIsArray || bIsArray {
		if !aIsArray || !bIsArray {
			return false
		}
		return equalSets(aSet, bSet)
	}
	return reflect.DeepEqual(a, b)
}

// asSet converts slice values (typed or JSON-decoded) into a set of element
// spellings.
func asSet(v any) (map[string]struct{}, bool) {
	switch vv := v.(type) {
	case []string:
		set := make(map[string]struct{}, len(vv))
		for _, s := range vv {
			set[s] = struct{}{}
		}
		return set, true
	case []any:
		set := make(map[string]struct{}, len(vv))
		for _, e := range vv {
			set[fmt.Sprintf("%v", e)] = struct{}{}
		}
		return set, true
	default:
		return nil, false
	}
}

func equalSets(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
