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
	"encoding/json"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

type listCmd struct {
	commandBase
	asJSON bool
}

func (*listCmd) Name() string {
	return "list"
}

func (*listCmd) Description() string {
	return "Print the doc versions present in the site, newest first."
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	c.commandBase.SetFlags(f)
	f.BoolVar(&c.asJSON, "json", false, "print a JSON array instead of one version per line")
}

func (c *listCmd) Execute(ctx context.Context, args []string) error {
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
	if c.asJSON {
		e := json.NewEncoder(stdout)
		e.SetIndent("", "  ")
		return e.Encode(versions)
	}
	for _, v := range versions {
		fmt.Fprintf(stdout, "%s\n", v)
	}
	return nil
}
