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

// Package token splits strings into runs of text and numbers.
//
// # Tokens
//
// A [Token] is either [Text] or [Number]. [Tokenize] produces them in the
// order they appear in the input. Two [Text] tokens are never adjacent, and
// empty text runs are never produced: an input that begins (or ends) with a
// number yields a sequence that begins (or ends) with a [Number] token.
//
// Two [Number] tokens may be adjacent when one numeric run ends where the
// next begins. With a float grammar, "v1.2.3" is "v", 1.2 and .3.
//
// # Grammars
//
// Which substrings count as numbers is decided by a [Grammar]: something that
// can locate the next numeric run in a string and convert it into a [Value].
// The grammars used by natural sorting live in package grammar; this package
// only depends on the [Grammar] interface.
package token
