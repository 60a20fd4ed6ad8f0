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
	"fmt"

	"github.com/patrickmn/go-cache"
)

// NewRenderCache holds formatted traversals so that repeated print commands
// on an unchanged tree skip the walk.
func NewRenderCache(cfg CacheConfig) *cache.Cache {
	return cache.New(cfg.Expiration, cfg.Cleanup)
}

// renderKey ties a view to the tree generation it was produced from; any
// mutation bumps the generation and strands the old entries until cleanup.
func renderKey(view string, generation uint64) string {
	return fmt.Sprintf("%s@%d", view, generation)
}

func CacheRender(c *cache.Cache, key string, text string) {
	c.Set(key, text, cache.DefaultExpiration)
}

func GetRender(c *cache.Cache, key string) (string, bool) {
	val, ok := c.Get(key)
	if !ok {
		return "", false
	}
	return val.(string), true
}

// GetOrFillRender returns the cached text for key, computing and storing it
// on a miss.
func GetOrFillRender(c *cache.Cache, key string, fill func() string) string {
	if text, ok := GetRender(c, key); ok {
		return text
	}
	text := fill()
	CacheRender(c, key, text)
	return text
}
