// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements an ordered map that keeps items in the
// order they were first added, with fast key lookup. The zero value
// is an empty map ready to use.
package ordmap

// KeyValue represents a key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a generic ordered map: Order holds the items in the order
// added, and Map holds the index of each key in Order.
type Map[K comparable, V any] struct {

	// Order is an ordered list of values and associated keys, in the order added.
	Order []KeyValue[K, V]

	// Map is the key to index mapping.
	Map map[K]int
}

// Add adds a new value for given key.
// If key already exists in map, it replaces the item at that existing index,
// otherwise it is added to the end.
func (om *Map[K, V]) Add(key K, val V) {
	if om.Map == nil {
		om.Map = make(map[K]int)
	}
	if idx, has := om.Map[key]; has {
		om.Order[idx].Value = val
		return
	}
	om.Map[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
}

// ValueByKeyTry returns the value corresponding to given key,
// with false returned if not found.
func (om *Map[K, V]) ValueByKeyTry(key K) (V, bool) {
	idx, has := om.Map[key]
	if !has {
		var zv V
		return zv, false
	}
	return om.Order[idx].Value, true
}

// Len returns the number of items in the map.
func (om *Map[K, V]) Len() int {
	return len(om.Order)
}

// Keys returns the keys in order.
func (om *Map[K, V]) Keys() []K {
	keys := make([]K, len(om.Order))
	for i, kv := range om.Order {
		keys[i] = kv.Key
	}
	return keys
}
