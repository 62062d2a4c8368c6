// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package mistakes_test

import (
	"fmt"
	"strings"

	"znkr.io/mistakes"
)

func ExampleCompute() {
	for _, m := range mistakes.Compute("Hellw warld!", "Hello world!") {
		fmt.Printf("%v %q -> %q check=%v\n", m.Kind, m.Word, m.WordCorrect, m.BoundsCheck)
		for _, a := range m.Actions {
			fmt.Printf("  %v %q @%d\n", a.Kind, a.Char, a.IndexCheck)
		}
	}
	// Output:
	// Mixed "Hellw" -> "Hello" check=[0,5)
	//   Add "o" @4
	//   Del "w" @4
	// Mixed "warld" -> "world" check=[6,11)
	//   Add "o" @7
	//   Del "a" @7
}

func ExampleCompute_noFolding() {
	for _, m := range mistakes.Compute("Hellw warld!", "Hello world!", mistakes.NoFolding()) {
		fmt.Printf("%v %q diff=%v\n", m.Kind, m.Word, m.BoundsDiff)
	}
	// Output:
	// Add "Hello" diff=[0,5)
	// Del "Hellw" diff=[5,10)
	// Add "world" diff=[11,16)
	// Del "warld" diff=[16,21)
}

func ExampleEditScript() {
	check := strings.Split("Test Hellw warld!", "")
	correct := strings.Split("Hello world!", "")
	for _, e := range mistakes.EditScript(check, correct) {
		fmt.Printf("%v %q @%d/%d\n", e.Kind, e.Item, e.IndexCheck, e.IndexCorrect)
	}
	// Output:
	// Del "T" @0/0
	// Del "e" @1/0
	// Del "s" @2/0
	// Del "t" @3/0
	// Del " " @4/0
	// Del "w" @9/4
	// Add "o" @10/4
	// Del "a" @12/7
	// Add "o" @13/7
}

func ExampleTokenize() {
	for _, tok := range mistakes.Tokenize("Hello, world!") {
		fmt.Printf("%v %q @%d\n", tok.Kind, tok.Content, tok.Offset)
	}
	// Output:
	// TokenWord "Hello" @0
	// TokenPunct "," @5
	// TokenPunct " " @6
	// TokenWord "world" @7
	// TokenPunct "!" @12
}

func ExampleMerge() {
	ms := mistakes.Compute("", "Hello World")
	merged, err := mistakes.Merge(ms)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%v/%v %q -> %q correct=%v\n", merged.Kind, merged.Subtype, merged.Word, merged.WordCorrect, merged.BoundsCorrect)
	for _, m := range mistakes.Unmerge(merged) {
		fmt.Printf("%v/%v %q correct=%v\n", m.Kind, m.Subtype, m.Word, m.BoundsCorrect)
	}
	// Output:
	// Add/Merged "Hello.. ..World" -> "Hello.. ..World" correct=[0,11)
	// Add/Word "Hello" correct=[0,5)
	// Add/Other " " correct=[5,6)
	// Add/Word "World" correct=[6,11)
}
