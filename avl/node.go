// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package avl implements a height-balanced binary search tree. Every
// mutation recomputes heights on the way back up and repairs any node whose
// subtrees differ in height by more than one.
package avl

import (
	"cmp"

	"github.com/cybrota/arbor/ordered"
)

type Node[K cmp.Ordered] struct {
	key    K
	height int
	left   *Node[K]
	right  *Node[K]
}

func (n *Node[K]) Key() K { return n.key }

// Height is the stored height of the subtree rooted at n.
func (n *Node[K]) Height() int { return n.height }

func (n *Node[K]) Left() ordered.Node[K] {
	if n.left == nil {
		return nil
	}
	return n.left
}

func (n *Node[K]) Right() ordered.Node[K] {
	if n.right == nil {
		return nil
	}
	return n.right
}
