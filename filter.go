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
	"strconv"

	"github.com/willf/bloom"
)

// keyFilter remembers every key ever inserted into a session's tree. A
// negative answer means the key was never inserted, so the tree lookup can
// be skipped. Deleted keys stay in the filter and fall through to the tree.
type keyFilter struct {
	bf      *bloom.BloomFilter
	skipped int
}

func newKeyFilter(cfg FilterConfig) *keyFilter {
	return &keyFilter{bf: bloom.New(cfg.BloomFilterSize, cfg.BloomFilterHashes)}
}

func (f *keyFilter) Add(key int) {
	f.bf.AddString(strconv.Itoa(key))
}

func (f *keyFilter) MayContain(key int) bool {
	if f.bf.TestString(strconv.Itoa(key)) {
		return true
	}
	f.skipped++
	return false
}

// Skipped counts lookups answered by the filter alone.
func (f *keyFilter) Skipped() int {
	return f.skipped
}
