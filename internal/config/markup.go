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

package config

// Markup configures how the annotate package marks deleted and inserted text.
type Markup struct {
	DeleteStart, DeleteEnd string
	InsertStart, InsertEnd string
}

// PlainMarkup marks text with brackets.
var PlainMarkup = Markup{
	DeleteStart: "[-",
	DeleteEnd:   "-]",
	InsertStart: "{+",
	InsertEnd:   "+}",
}

// ColorConfig holds ANSI escape sequences for terminal output.
type ColorConfig struct {
	Delete string
	Insert string
}

// DefaultColors colors deletions red and insertions green.
var DefaultColors = ColorConfig{
	Delete: "\033[31m",
	Insert: "\033[32m",
}

// Reset ends a colored section.
const Reset = "\033[0m"

// Markup returns the markup for cc.
func (cc ColorConfig) Markup() Markup {
	return Markup{
		DeleteStart: cc.Delete,
		DeleteEnd:   Reset,
		InsertStart: cc.Insert,
		InsertEnd:   Reset,
	}
}
