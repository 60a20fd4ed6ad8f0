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
	"testing"
	"time"
)

func TestCacheRenderAndGetRender(t *testing.T) {
	c := NewRenderCache(defaultConfig().Cache)
	key := renderKey("print", 3)

	if _, ok := GetRender(c, key); ok {
		t.Errorf("GetRender(%q) hit on an empty cache", key)
	}

	CacheRender(c, key, "0 8 16")

	if got, ok := GetRender(c, key); !ok || got != "0 8 16" {
		t.Errorf("GetRender(%q) = %q, %t; want %q", key, got, ok, "0 8 16")
	}
	if _, ok := GetRender(c, renderKey("print", 4)); ok {
		t.Error("a newer generation hit the old entry")
	}
}

func TestGetOrFillRender(t *testing.T) {
	c := NewRenderCache(defaultConfig().Cache)
	calls := 0
	fill := func() string {
		calls++
		return "20 8 0"
	}

	for i := 0; i < 3; i++ {
		if got := GetOrFillRender(c, "preorder@1", fill); got != "20 8 0" {
			t.Fatalf("GetOrFillRender = %q", got)
		}
	}
	if calls != 1 {
		t.Errorf("fill called %d times; want 1", calls)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := NewRenderCache(CacheConfig{Expiration: 100 * time.Millisecond, Cleanup: 50 * time.Millisecond})
	key := renderKey("print", 1)

	CacheRender(c, key, "1 2 3")

	if got, _ := GetRender(c, key); got != "1 2 3" {
		t.Errorf("GetRender(%q) = %q; want %q", key, got, "1 2 3")
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if got, ok := GetRender(c, key); ok {
		t.Errorf("After expiration, GetRender(%q) = %q; want a miss", key, got)
	}
}
