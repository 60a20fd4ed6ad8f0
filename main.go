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
	"log"
	"os"

	"github.com/spf13/cobra"
)

var version = "v0.1.0"

func main() {
	InitializeColors()

	asciiLogo := `
 █████╗ ██████╗ ██████╗  ██████╗ ██████╗
██╔══██╗██╔══██╗██╔══██╗██╔═══██╗██╔══██╗
███████║██████╔╝██████╔╝██║   ██║██████╔╝
██╔══██║██╔══██╗██╔══██╗██║   ██║██╔══██╗
██║  ██║██║  ██║██████╔╝╚██████╔╝██║  ██║
╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═╝  ╚═╝
Self-balancing search trees with an interactive shell [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}

	var plain bool
	startShell := func(cmd *cobra.Command, args []string) {
		name := config.Shell.DefaultTree
		if len(args) > 0 {
			name = args[0]
		}
		session, err := NewSession(name, config)
		if err != nil {
			log.Fatalf("Error starting shell: %v", err)
		}
		if plain || config.Shell.Plain {
			err = runPlainShell(session, os.Stdin, os.Stdout)
		} else {
			err = runShellTUI(session)
		}
		if err != nil {
			log.Fatalf("Error running shell: %v", err)
		}
	}

	var cmdShell = &cobra.Command{
		Use:   "shell [tree]",
		Short: "Open the interactive tree shell",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Shell creates an empty tree (avl, rbt, llrb or bst) and reads operations`),
		Args:  cobra.MaximumNArgs(1),
		Run:   startShell,
	}
	cmdShell.Flags().BoolVar(&plain, "plain", false, "read operations line by line instead of opening the terminal UI")

	var trees []string
	var chart bool
	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Time inserts for each tree variant",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Bench inserts the configured number of keys into every selected tree and reports time, height and validity`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			opts := benchOptions{
				Sizes:    config.Bench.Sizes,
				Variants: trees,
				Random:   config.Bench.Random,
				Seed:     config.Bench.Seed,
				Lookups:  config.Bench.Lookups,
				Progress: true,
			}
			if cmd.Flags().Changed("random") {
				opts.Random, _ = cmd.Flags().GetBool("random")
			}
			if cmd.Flags().Changed("sizes") {
				opts.Sizes, _ = cmd.Flags().GetIntSlice("sizes")
			}
			if cmd.Flags().Changed("seed") {
				opts.Seed, _ = cmd.Flags().GetInt64("seed")
			}

			results, err := runBench(opts, os.Stderr)
			if err != nil {
				log.Fatalf("Error running benchmark: %v", err)
			}
			if chart || config.Bench.Chart {
				if err := showBenchChart(results); err != nil {
					log.Fatalf("Error drawing chart: %v", err)
				}
			}
			fmt.Println(renderBenchTable(results))
		},
	}
	cmdBench.Flags().StringSliceVar(&trees, "trees", nil, "trees to benchmark (default avl,rbt,llrb)")
	cmdBench.Flags().IntSlice("sizes", nil, "number of keys per run")
	cmdBench.Flags().Bool("random", false, "insert a shuffled key sequence")
	cmdBench.Flags().Int64("seed", 0, "shuffle seed")
	cmdBench.Flags().BoolVar(&chart, "chart", false, "show a bar chart of the results")

	var deletes []int
	var cmdVerify = &cobra.Command{
		Use:   "verify <tree> <keys...>",
		Short: "Build a tree from keys and check its invariants",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Verify inserts the keys, optionally deletes some, prints the tree shape and checks every invariant`),
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			err := runVerify(os.Stdout, args[0], args[1:], deletes)
			if errors.Is(err, errInvalidTree) {
				os.Exit(1)
			}
			if err != nil {
				log.Fatalf("Error verifying tree: %v", err)
			}
		},
	}
	cmdVerify.Flags().IntSliceVar(&deletes, "delete", nil, "keys to delete after inserting")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Arbor usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the arbor CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings prints ~/.arbor.yaml, creating it with defaults when missing`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Arbor version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "arbor",
		Version: version,
		Long:    asciiLogo,
		Args:    cobra.MaximumNArgs(1),
		// Default to the shell when no subcommand is provided
		Run: startShell,
	}
	rootCmd.Flags().BoolVar(&plain, "plain", false, "read operations line by line instead of opening the terminal UI")
	rootCmd.AddCommand(cmdShell, cmdBench, cmdVerify, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
