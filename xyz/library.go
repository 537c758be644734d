// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
)

// AddToLibrary adds the given subtree to the library, using its name
// as the key. A subtree with the same name is replaced in place.
func (sc *Scene) AddToLibrary(n *Node) {
	sc.Library.Add(n.Name, n)
}

// NewInLibrary makes a new group in the library with the given name.
func (sc *Scene) NewInLibrary(name string) *Node {
	gp := NewGroup(name)
	sc.AddToLibrary(gp)
	return gp
}

// AddFromLibrary adds a clone of the named library subtree under the
// given parent. Meshes and materials are shared with the library copy.
func (sc *Scene) AddFromLibrary(name string, parent *Node) (*Node, error) {
	n, ok := sc.Library.ValueByKeyTry(name)
	if !ok {
		return nil, fmt.Errorf("%w: library item %q", ErrNotFound, name)
	}
	nn := n.CloneTree()
	parent.AddChild(nn)
	return nn, nil
}
