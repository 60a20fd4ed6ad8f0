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
	"slices"
	"testing"
)

func TestLookupVariant(t *testing.T) {
	tests := []struct {
		input      string
		want       string
		wantDelete bool
		wantErr    error
	}{
		{"avl", "avl", true, nil},
		{" RBT ", "rbt", true, nil},
		{"llrb", "llrb", false, nil},
		{"bst", "bst", true, nil},
		{"splay", "", false, errUnknownVariant},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := lookupVariant(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v; want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if v.Name != tt.want {
				t.Errorf("Name = %q; want %q", v.Name, tt.want)
			}
			tree := v.New()
			if got := supportsDelete(tree); got != tt.wantDelete {
				t.Errorf("supportsDelete = %t; want %t", got, tt.wantDelete)
			}
			if !tree.IsEmpty() {
				t.Error("constructor returned a non-empty tree")
			}
		})
	}
}

func TestVariantNames(t *testing.T) {
	if got, want := variantNames(), []string{"avl", "bst", "llrb", "rbt"}; !slices.Equal(got, want) {
		t.Errorf("variantNames = %v; want %v", got, want)
	}
}

// Every variant answers the same queries the same way for the same keys.
func TestVariantsAgree(t *testing.T) {
	keys := []int{12, 1, 9, 2, 0, 11, 7, 19, 4, 15, 18, 5, 14, 13, 10, 16, 6, 3, 8, 17}
	for _, name := range variantNames() {
		t.Run(name, func(t *testing.T) {
			tree := variants[name].New()
			for _, k := range keys {
				tree.Insert(k)
			}
			if err := tree.Verify(); err != nil {
				t.Fatal(err)
			}
			want := slices.Clone(keys)
			slices.Sort(want)
			if got := tree.InOrder(); !slices.Equal(got, want) {
				t.Errorf("InOrder = %v", got)
			}
			if lo, _ := tree.Min(); lo != 0 {
				t.Errorf("Min = %d", lo)
			}
			if hi, _ := tree.Max(); hi != 19 {
				t.Errorf("Max = %d", hi)
			}
			if tree.Len() != len(keys) {
				t.Errorf("Len = %d", tree.Len())
			}
		})
	}
}
