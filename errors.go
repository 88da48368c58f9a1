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

package natsort

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is wrapped by the [*ConfigurationError] reported for a
// [Range] whose low end is not below its high end.
var ErrInvalidRange = errors.New("low >= high")

// ConfigurationError is an error in the options passed to a sort or filter,
// detected before any entries are looked at.
type ConfigurationError struct {
	Option string // The option at fault, e.g. "filter".
	Index  int    // Which occurrence of Option is at fault.
	Range  Range  // The offending range.
	Err    error  // What is wrong with it.
}

// Error implements [error].
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("Error in --%s: %v", e.Option, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
