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

package reporting

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/docpub-project/docpub/internal/tutorial"
)

// MultiReport is a Report that wraps any number of other Report objects
// and tees output to all of them.
type MultiReport struct {
	Reporters []Report
}

var _ Report = (*MultiReport)(nil)

func (t *MultiReport) EmitFinding(ctx context.Context, check string, level tutorial.Level, message, root, file string, s tutorial.Span) error {
	return t.do(func(r Report) error {
		return r.EmitFinding(ctx, check, level, message, root, file, s)
	})
}

func (t *MultiReport) CheckCompleted(ctx context.Context, check string, d time.Duration, level tutorial.Level, err error) {
	_ = t.do(func(r Report) error {
		r.CheckCompleted(ctx, check, d, level, err)
		return nil
	})
}

func (t *MultiReport) Print(ctx context.Context, file string, line int, message string) {
	_ = t.do(func(r Report) error {
		r.Print(ctx, file, line, message)
		return nil
	})
}

func (t *MultiReport) Close() error {
	return t.do(func(r Report) error {
		return r.Close()
	})
}

func (t *MultiReport) do(f func(r Report) error) error {
	var eg errgroup.Group
	for _, r := range t.Reporters {
		r := r
		eg.Go(func() error {
			return f(r)
		})
	}
	return eg.Wait()
}
