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

package llrb

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestInsertScenario(t *testing.T) {
	tree := New[int]()
	for _, k := range []int{0, 16, 8, 24, 20, 22} {
		tree.Insert(k)
	}
	if got, want := tree.PreOrder(), []int{20, 8, 0, 16, 24, 22}; !slices.Equal(got, want) {
		t.Errorf("PreOrder = %v; want %v", got, want)
	}
	if err := tree.Verify(); err != nil {
		t.Errorf("Verify: %v", err)
	}
	if c := tree.Root().left.Color(); c != Red {
		t.Errorf("colour of 8 = %v; want Red", c)
	}
}

func TestValidAfterEveryInsert(t *testing.T) {
	tests := []struct {
		name string
		keys []int
	}{
		{"mixed", []int{12, 1, 9, 2, 0, 11, 7, 19, 4, 15, 18, 5, 14, 13, 10, 16, 6, 3, 8, 17}},
		{"ascending", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
		{"descending", []int{12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}},
		{"duplicates", []int{5, 5, 3, 3, 8, 8, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := New[int]()
			for _, k := range tt.keys {
				tree.Insert(k)
				if err := tree.Verify(); err != nil {
					t.Fatalf("after inserting %d: %v", k, err)
				}
			}
			want := slices.Clone(tt.keys)
			slices.Sort(want)
			want = slices.Compact(want)
			if got := tree.InOrder(); !slices.Equal(got, want) {
				t.Errorf("InOrder = %v; want %v", got, want)
			}
		})
	}
}

func TestEmptyTree(t *testing.T) {
	tree := New[string]()
	if !tree.IsEmpty() || tree.Height() != 0 || tree.CountLeaves() != 0 {
		t.Error("new tree is not empty")
	}
	if _, ok := tree.Max(); ok {
		t.Error("Max reported a key")
	}
	if !tree.IsValid() {
		t.Error("empty tree is not valid")
	}
	tree.Insert("x")
	if tree.Height() != 1 || tree.CountLeaves() != 1 || !tree.Contains("x") {
		t.Error("single key tree is wrong")
	}
}

func TestRandomInsertHeight(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 0x11b))
	tree := New[int]()
	for i := 0; i < 5000; i++ {
		tree.Insert(r.IntN(1 << 20))
	}
	if err := tree.Verify(); err != nil {
		t.Fatal(err)
	}
	if limit := 2 * math.Log2(float64(tree.Len())+1); float64(tree.Height()) > limit {
		t.Errorf("height %d exceeds %.2f", tree.Height(), limit)
	}
}

func TestVerifyRejectsRightLeaningRed(t *testing.T) {
	root := &Node[int]{key: 1, color: Black}
	root.right = &Node[int]{key: 2, color: Red}
	tree := &Tree[int]{root: root, size: 2}
	if tree.Verify() == nil {
		t.Error("Verify accepted a red right link")
	}
	if !tree.IsValid() {
		t.Error("IsValid only checks black heights")
	}
}

func TestPreconditionPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"rotate left without right child", func() {
			(&Node[int]{key: 1, color: Black}).rotateLeft()
		}},
		{"rotate right without left child", func() {
			(&Node[int]{key: 1, color: Black}).rotateRight()
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected a panic")
				}
			}()
			tt.fn()
		})
	}
}

func BenchmarkInsertSequential(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tree := New[int]()
		for v := 0; v < 10000; v++ {
			tree.Insert(v)
		}
	}
}
