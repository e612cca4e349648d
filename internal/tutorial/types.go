// Copyright 2026 The Docpub Authors
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

// Package tutorial loads and validates the versioned tutorial sources of
// the documentation site.
package tutorial

import (
	"context"
	"errors"
	"time"
)

// ErrCheckFailed is returned by Run() when at least one check failed.
//
// The information will have been provided via the Report interface.
var ErrCheckFailed = errors.New("a check failed")

// Level is the severity of a finding.
type Level string

// Valid Level values.
const (
	Notice  Level = "notice"
	Warning Level = "warning"
	Error   Level = "error"
)

// Cursor represents a point in a tutorial source file.
type Cursor struct {
	Line int
	Col  int

	// Require keyed arguments.
	_ struct{}
}

// Span represents a section in a tutorial source file.
type Span struct {
	// Start is the beginning of the span. If Col is specified, Line must
	// be specified.
	Start Cursor
	// End is the end of the span. If not specified, the span has only
	// one line.
	End Cursor

	// Require keyed arguments.
	_ struct{}
}

// Report gets the results of the checks as they are emitted.
type Report interface {
	// EmitFinding emits a finding by a check for a specific file.
	//
	// file is relative to the site root. A finding without a file is
	// about the site as a whole.
	EmitFinding(ctx context.Context, check string, level Level, message, root, file string, s Span) error
	// CheckCompleted is called when a check is done.
	CheckCompleted(ctx context.Context, check string, d time.Duration, level Level, err error)
	// Print is called for informational output.
	Print(ctx context.Context, file string, line int, message string)
}
