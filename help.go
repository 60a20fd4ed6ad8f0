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
	"runtime"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	var trees strings.Builder
	for _, name := range variantNames() {
		v := variants[name]
		fmt.Fprintf(&trees, "* **%s** %s: %s\n", v.Name, v.Title, v.Description)
	}

	message := fmt.Sprintf(`

 **Arbor %s**

Balanced search trees you can poke at. Insert and delete keys, inspect the
shape, check the invariants and race the variants against each other.

Built with Go %s

# 1. Commands
* arbor shell [tree] - interactive shell (add --plain for a line prompt)
* arbor bench - time sequential or shuffled inserts for every tree
* arbor verify <tree> <keys...> - build a tree and check its invariants
* arbor settings - show and create ~/.arbor.yaml

# 2. Trees
%s
# 3. Shell operations
insert, delete, contains, height, count, len, min, max, print, preorder,
empty, valid, copy, help, exit

# Please be aware
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), trees.String())
	result := markdown.Render(message, 80, 3)
	return string(result)
}

// shellHelpMarkdown is the command reference shown by the shell's help
// command.
func shellHelpMarkdown(v Variant) string {
	deleteNote := "remove keys"
	if !supportsDelete(v.New()) {
		deleteNote = "not available for this tree"
	}
	return fmt.Sprintf(`# %s

| Operation | Effect |
|---|---|
| insert [v...] | add keys, asks for a value when none is given |
| delete [v...] | %s |
| contains [v...] | membership test |
| height | nodes on the longest path |
| count | number of leaves |
| len | number of keys |
| min / max | smallest and largest key |
| print | keys in order |
| preorder | keys node first |
| empty | whether the tree holds no key |
| valid | check every invariant |
| copy | copy the last output to the clipboard |
| exit | leave the shell |
`, v.Title, deleteNote)
}
