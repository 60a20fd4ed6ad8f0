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

package bst

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestOperations(t *testing.T) {
	tests := []struct {
		name     string
		insert   []int
		remove   []int
		preOrder []int
		height   int
	}{
		{"sorted input degenerates", []int{1, 2, 3, 4}, nil, []int{1, 2, 3, 4}, 4},
		{"duplicates", []int{5, 3, 5, 3}, nil, []int{5, 3}, 2},
		{"delete leaf", []int{5, 3, 8}, []int{3}, []int{5, 8}, 2},
		{"delete one child", []int{5, 3, 8, 9}, []int{8}, []int{5, 3, 9}, 2},
		{"delete two children", []int{5, 3, 8, 7, 9}, []int{5}, []int{7, 3, 8, 9}, 3},
		{"delete missing", []int{5, 3}, []int{4, 4}, []int{5, 3}, 2},
		{"delete all", []int{2, 1, 3}, []int{2, 1, 3}, []int{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := New[int]()
			for _, k := range tt.insert {
				tree.Insert(k)
			}
			for _, k := range tt.remove {
				tree.Delete(k)
			}
			if got := tree.PreOrder(); !slices.Equal(got, tt.preOrder) {
				t.Errorf("PreOrder = %v; want %v", got, tt.preOrder)
			}
			if h := tree.Height(); h != tt.height {
				t.Errorf("Height = %d; want %d", h, tt.height)
			}
			if err := tree.Verify(); err != nil {
				t.Errorf("Verify: %v", err)
			}
			if tree.Len() != len(tt.preOrder) {
				t.Errorf("Len = %d; want %d", tree.Len(), len(tt.preOrder))
			}
		})
	}
}

func TestQueries(t *testing.T) {
	tree := New[string]()
	if _, ok := tree.Min(); ok {
		t.Error("Min on empty tree reported a key")
	}
	for _, k := range []string{"m", "c", "x", "a"} {
		tree.Insert(k)
	}
	if k, _ := tree.Min(); k != "a" {
		t.Errorf("Min = %q", k)
	}
	if k, _ := tree.Max(); k != "x" {
		t.Errorf("Max = %q", k)
	}
	if !tree.Contains("c") || tree.Contains("d") {
		t.Error("Contains is wrong")
	}
	if n := tree.CountLeaves(); n != 2 {
		t.Errorf("CountLeaves = %d; want 2", n)
	}
	if !tree.IsValid() {
		t.Error("IsValid = false")
	}
}

func BenchmarkInsertRandom(b *testing.B) {
	keys := rand.New(rand.NewPCG(1, 2)).Perm(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := New[int]()
		for _, k := range keys {
			tree.Insert(k)
		}
	}
}
