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
	"strings"
	"testing"
)

func TestRunVerify(t *testing.T) {
	tests := []struct {
		name    string
		variant string
		keys    []string
		deletes []int
		want    []string
		wantErr error
	}{
		{
			name:    "avl scenario",
			variant: "avl",
			keys:    []string{"0", "16", "8", "24", "20", "22"},
			deletes: []int{16},
			want:    []string{"pre-order: [20 8 0 24 22]", "keys: 5", "valid"},
		},
		{
			name:    "rbt scenario",
			variant: "rbt",
			keys:    []string{"0", "16", "8", "24", "20", "22"},
			want:    []string{"pre-order: [8 0 20 16 24 22]", "height: 4", "leaves: 3"},
		},
		{
			name:    "empty tree",
			variant: "bst",
			want:    []string{"in-order:  []", "keys: 0  height: 0  leaves: 0"},
		},
		{
			name:    "llrb cannot delete",
			variant: "llrb",
			keys:    []string{"1"},
			deletes: []int{1},
			wantErr: errUnsupported,
		},
		{
			name:    "bad key",
			variant: "avl",
			keys:    []string{"1", "two"},
			wantErr: errNotInteger,
		},
		{
			name:    "unknown tree",
			variant: "trie",
			wantErr: errUnknownVariant,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			err := runVerify(&out, tt.variant, tt.keys, tt.deletes)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v; want %v", err, tt.wantErr)
			}
			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}
