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

package cli

import (
	"context"
	"errors"

	flag "github.com/spf13/pflag"

	"github.com/docpub-project/docpub/internal/reporting"
	"github.com/docpub-project/docpub/internal/tutorial"
)

type checkCmd struct {
	commandBase
}

func (*checkCmd) Name() string {
	return "check"
}

func (*checkCmd) Description() string {
	return "Run the tutorial page checks over every retained doc version."
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	c.commandBase.SetFlags(f)
}

func (c *checkCmd) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.New("unsupported arguments")
	}
	s, err := c.site()
	if err != nil {
		return err
	}
	r, err := reporting.Get(ctx)
	if err != nil {
		return err
	}
	err = tutorial.Run(ctx, &tutorial.Options{Site: s, Report: r})
	if err2 := r.Close(); err == nil {
		err = err2
	}
	return err
}
