// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package natsort sorts strings in natural order: the order a human would
// expect, where numbers embedded in strings are compared by value rather
// than character by character. "item2" sorts before "item10".
//
// # Keys
//
// Sorting works by computing a [Key] for every string. A key is the string's
// tokens, as produced by [token.Tokenize]: runs of text separated by
// numbers. Keys are compared element by element. Numbers compare by value,
// text compares by codepoint, and at a position where one key has a number
// and the other has text, the number sorts first. If one key is a prefix of
// the other, the shorter key sorts first; in particular, the key of the
// empty string sorts before every other key.
//
// # Grammars
//
// What counts as a number is configurable: see package grammar. The choices
// are a base kind (digits only, integers, or floats) and whether a leading
// sign or a trailing exponent is part of the number. For example, with
// signed integers "a-5" contains the number -5, while with unsigned integers
// it contains the text "a-" followed by the number 5. [Options] bundles these
// choices together with the sort direction.
//
// # Filtering
//
// [RangeFilter] and [Excluder] select strings by the numbers they contain,
// using the same grammar as sorting. [Filter] applies both to a list of
// strings.
//
// None of the functions in this package retain their inputs, and all of them
// may be called concurrently.
package natsort
