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

package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cybrota/arbor/avl"
	"github.com/cybrota/arbor/bst"
	"github.com/cybrota/arbor/llrb"
	"github.com/cybrota/arbor/ordered"
	"github.com/cybrota/arbor/rbtree"
)

var errUnknownVariant = errors.New("unknown tree variant")

// Variant describes one selectable tree implementation.
type Variant struct {
	Name        string
	Title       string
	Description string
	New         func() ordered.Tree[int]
}

var variants = map[string]Variant{
	"avl": {
		Name:        "avl",
		Title:       "AVL Tree",
		Description: "height-balanced, rotations on insert and delete",
		New:         func() ordered.Tree[int] { return avl.New[int]() },
	},
	"rbt": {
		Name:        "rbt",
		Title:       "Red-Black Tree",
		Description: "colour-balanced with parent links, insert and delete",
		New:         func() ordered.Tree[int] { return rbtree.New[int]() },
	},
	"llrb": {
		Name:        "llrb",
		Title:       "Left-Leaning Red-Black Tree",
		Description: "top-down colour flips, insert only",
		New:         func() ordered.Tree[int] { return llrb.New[int]() },
	},
	"bst": {
		Name:        "bst",
		Title:       "Binary Search Tree",
		Description: "unbalanced baseline",
		New:         func() ordered.Tree[int] { return bst.New[int]() },
	},
}

// variantNames returns the registered names in sorted order.
func variantNames() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupVariant(name string) (Variant, error) {
	v, ok := variants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Variant{}, fmt.Errorf("%w %q (choose one of: %s)", errUnknownVariant, name, strings.Join(variantNames(), ", "))
	}
	return v, nil
}

// supportsDelete reports whether t can remove keys.
func supportsDelete(t ordered.Tree[int]) bool {
	_, ok := t.(ordered.MutableTree[int])
	return ok
}
