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
	"io"

	"github.com/cybrota/arbor/ordered"
)

var errInvalidTree = errors.New("tree is invalid")

// runVerify builds a tree from keys, removes deletes, prints its shape and
// reports whether every invariant holds.
func runVerify(out io.Writer, variantName string, keys []string, deletes []int) error {
	v, err := lookupVariant(variantName)
	if err != nil {
		return err
	}
	values, err := parseValues(keys)
	if err != nil {
		return err
	}

	tree := v.New()
	for _, k := range values {
		tree.Insert(k)
	}
	if len(deletes) > 0 {
		mt, ok := tree.(ordered.MutableTree[int])
		if !ok {
			return fmt.Errorf("%s: delete: %w", v.Name, errUnsupported)
		}
		for _, k := range deletes {
			mt.Delete(k)
		}
	}

	fmt.Fprintf(out, "🌳 %s%s%s\n", Green, v.Title, Reset)
	fmt.Fprintf(out, "  in-order:  %v\n", tree.InOrder())
	fmt.Fprintf(out, "  pre-order: %v\n", tree.PreOrder())
	fmt.Fprintf(out, "  keys: %d  height: %d  leaves: %d\n", tree.Len(), tree.Height(), tree.CountLeaves())

	if err := tree.Verify(); err != nil {
		fmt.Fprintf(out, "❌ %sinvalid%s: %v\n", Error, Reset, err)
		return fmt.Errorf("%w: %v", errInvalidTree, err)
	}
	fmt.Fprintf(out, "✅ %svalid%s\n", Green, Reset)
	return nil
}
