// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"slices"

	"cogentcore.org/scenegraph/base/errors"
	"github.com/jinzhu/copier"
)

// Clone returns a copy of this node named "<name> (Clone)", with its own
// transforms and sub-mesh list. Meshes and materials are shared with the
// original, and children are not copied.
func (n *Node) Clone() *Node {
	nn := n.copy()
	nn.Name = n.Name + " (Clone)"
	return nn
}

// CloneTree returns a [Node.Clone] of this node with clones of all
// descendants, which keep their names.
func (n *Node) CloneTree() *Node {
	nn := n.Clone()
	nn.Children = cloneChildren(n.Children)
	return nn
}

func cloneChildren(kids []*Node) []*Node {
	if len(kids) == 0 {
		return nil
	}
	nk := make([]*Node, len(kids))
	for i, c := range kids {
		nc := c.copy()
		nc.Children = cloneChildren(c.Children)
		nk[i] = nc
	}
	return nk
}

func (n *Node) copy() *Node {
	nn := &Node{}
	errors.Log(copier.Copy(nn, n))
	nn.Meshes = slices.Clone(n.Meshes)
	return nn
}
