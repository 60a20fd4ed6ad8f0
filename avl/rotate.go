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

package avl

import "cmp"

func getHeight[K cmp.Ordered](node *Node[K]) int {
	if node == nil {
		return 0
	}
	return node.height
}

func updateHeight[K cmp.Ordered](node *Node[K]) {
	node.height = max(getHeight(node.left), getHeight(node.right)) + 1
}

func getBalanceFactor[K cmp.Ordered](node *Node[K]) int {
	if node == nil {
		return 0
	}
	return getHeight(node.left) - getHeight(node.right)
}

// rotateLeft makes node's right child the root of the subtree and returns it.
// The caller relinks the returned node in place of node.
func rotateLeft[K cmp.Ordered](node *Node[K]) *Node[K] {
	if node == nil || node.right == nil {
		panic("avl: left rotation needs a right child")
	}

	pivot := node.right

	node.right = pivot.left
	pivot.left = node

	// node is now below pivot, so its height must be settled first
	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

// rotateRight is the mirror of rotateLeft.
func rotateRight[K cmp.Ordered](node *Node[K]) *Node[K] {
	if node == nil || node.left == nil {
		panic("avl: right rotation needs a left child")
	}

	pivot := node.left

	node.left = pivot.right
	pivot.right = node

	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

// rebalance applies whichever of the LL, RR, LR or RL repairs node needs and
// returns the new subtree root. node's height must already be current.
func rebalance[K cmp.Ordered](node *Node[K]) *Node[K] {
	balanceFactor := getBalanceFactor(node)

	// Left-heavy
	if balanceFactor > 1 {
		if getBalanceFactor(node.left) >= 0 {
			return rotateRight(node)
		}
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	}

	// Right-heavy
	if balanceFactor < -1 {
		if getBalanceFactor(node.right) <= 0 {
			return rotateLeft(node)
		}
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	return node
}
