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
	"fmt"

	flag "github.com/spf13/pflag"
)

type renderCmd struct {
	commandBase
}

func (*renderCmd) Name() string {
	return "render"
}

func (*renderCmd) Description() string {
	return "Regenerate index.html and _config.yml from the discovered doc versions."
}

func (c *renderCmd) SetFlags(f *flag.FlagSet) {
	c.commandBase.SetFlags(f)
}

func (c *renderCmd) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.New("unsupported arguments")
	}
	s, err := c.site()
	if err != nil {
		return err
	}
	versions, err := s.Discover()
	if err != nil {
		return err
	}
	if err = s.WriteSiteFiles(versions); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "rendered site files for %d versions\n", len(versions))
	return nil
}
