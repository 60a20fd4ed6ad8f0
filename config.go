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
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type ShellConfig struct {
	DefaultTree  string `yaml:"default_tree"`
	Prompt       string `yaml:"prompt"`
	Plain        bool   `yaml:"plain"`
	HistoryLimit int    `yaml:"history_limit"`
}

type BenchConfig struct {
	Sizes   []int `yaml:"sizes"`
	Seed    int64 `yaml:"seed"`
	Random  bool  `yaml:"random"`
	Lookups bool  `yaml:"lookups"`
	Chart   bool  `yaml:"chart"`
}

type FilterConfig struct {
	BloomFilterSize   uint `yaml:"bloom_filter_size"`
	BloomFilterHashes uint `yaml:"bloom_filter_hashes"`
}

type CacheConfig struct {
	Expiration time.Duration `yaml:"expiration"`
	Cleanup    time.Duration `yaml:"cleanup"`
}

type Config struct {
	Shell  ShellConfig  `yaml:"shell"`
	Bench  BenchConfig  `yaml:"bench"`
	Filter FilterConfig `yaml:"filter"`
	Cache  CacheConfig  `yaml:"cache"`
}

const configFileName = ".arbor.yaml"

func defaultConfig() *Config {
	return &Config{
		Shell: ShellConfig{
			DefaultTree:  "avl",
			Prompt:       "operation > ",
			HistoryLimit: 100,
		},
		Bench: BenchConfig{
			Sizes:   []int{10000, 40000, 70000, 100000, 130000},
			Seed:    522,
			Lookups: true,
		},
		Filter: FilterConfig{
			BloomFilterSize:   1 << 16,
			BloomFilterHashes: 5,
		},
		Cache: CacheConfig{
			Expiration: 10 * time.Minute,
			Cleanup:    time.Minute,
		},
	}
}

// LoadConfig reads ~/.arbor.yaml. A missing or unreadable file yields the
// defaults and no error.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaultConfig(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return defaultConfig(), nil
	}

	// Fields absent from the file keep their defaults.
	config := defaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaultConfig(), fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	config.normalize()
	return config, nil
}

// normalize replaces values that would make a component unusable.
func (c *Config) normalize() {
	d := defaultConfig()
	if _, err := lookupVariant(c.Shell.DefaultTree); err != nil {
		c.Shell.DefaultTree = d.Shell.DefaultTree
	}
	if c.Shell.Prompt == "" {
		c.Shell.Prompt = d.Shell.Prompt
	}
	if c.Shell.HistoryLimit < 0 {
		c.Shell.HistoryLimit = 0
	}
	sizes := c.Bench.Sizes[:0]
	for _, n := range c.Bench.Sizes {
		if n > 0 {
			sizes = append(sizes, n)
		}
	}
	c.Bench.Sizes = sizes
	if len(c.Bench.Sizes) == 0 {
		c.Bench.Sizes = d.Bench.Sizes
	}
	if c.Filter.BloomFilterSize == 0 {
		c.Filter.BloomFilterSize = d.Filter.BloomFilterSize
	}
	if c.Filter.BloomFilterHashes == 0 {
		c.Filter.BloomFilterHashes = d.Filter.BloomFilterHashes
	}
	if c.Cache.Expiration <= 0 {
		c.Cache.Expiration = d.Cache.Expiration
	}
	if c.Cache.Cleanup <= 0 {
		c.Cache.Cleanup = d.Cache.Cleanup
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(defaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 Arbor Configuration Settings\n")
	fmt.Printf("═══════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌳 %sShell:%s\n", Green, Reset)
	fmt.Printf("  • %sdefault_tree%s: %s\n", Green, Reset, config.Shell.DefaultTree)
	fmt.Printf("  • %sprompt%s: %q\n", Green, Reset, config.Shell.Prompt)
	fmt.Printf("  • %splain%s: %t\n", Green, Reset, config.Shell.Plain)
	fmt.Printf("  • %shistory_limit%s: %d\n\n", Green, Reset, config.Shell.HistoryLimit)

	fmt.Printf("⏱  %sBenchmarks:%s\n", Green, Reset)
	fmt.Printf("  • %ssizes%s: %v\n", Green, Reset, config.Bench.Sizes)
	fmt.Printf("  • %sseed%s: %d\n", Green, Reset, config.Bench.Seed)
	fmt.Printf("  • %srandom%s: %t\n", Green, Reset, config.Bench.Random)
	fmt.Printf("  • %slookups%s: %t\n", Green, Reset, config.Bench.Lookups)
	fmt.Printf("  • %schart%s: %t\n\n", Green, Reset, config.Bench.Chart)

	fmt.Printf("🔍 %sMembership filter:%s\n", Green, Reset)
	fmt.Printf("  • %sbloom_filter_size%s: %d\n", Green, Reset, config.Filter.BloomFilterSize)
	fmt.Printf("  • %sbloom_filter_hashes%s: %d\n\n", Green, Reset, config.Filter.BloomFilterHashes)

	fmt.Printf("🗂  %sRender cache:%s\n", Green, Reset)
	fmt.Printf("  • %sexpiration%s: %s\n", Green, Reset, config.Cache.Expiration)
	fmt.Printf("  • %scleanup%s: %s\n\n", Green, Reset, config.Cache.Cleanup)

	fmt.Printf("💡 Edit %s to change these values.\n", configPath)
}
