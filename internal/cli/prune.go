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
	"fmt"
	"strconv"

	flag "github.com/spf13/pflag"
)

type pruneCmd struct {
	commandBase
	dryRun bool
}

func (*pruneCmd) Name() string {
	return "prune"
}

func (*pruneCmd) Description() string {
	return "Keep the N most recent doc versions, delete the rest and\nregenerate the site files."
}

func (c *pruneCmd) SetFlags(f *flag.FlagSet) {
	c.commandBase.SetFlags(f)
	f.BoolVar(&c.dryRun, "dry-run", false, "report what would be deleted without touching the tree")
}

func (c *pruneCmd) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("the number of versions to keep is required")
	}
	keep, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid number of versions to keep %q", args[0])
	}
	s, err := c.site()
	if err != nil {
		return err
	}
	r, err := s.Prune(keep, c.dryRun)
	if err != nil {
		return err
	}
	verb := "removed"
	if c.dryRun {
		verb = "would remove"
	}
	for _, v := range r.Removed {
		fmt.Fprintf(stdout, "%s %s\n", verb, v)
	}
	fmt.Fprintf(stdout, "keeping %d of %d versions\n", len(r.Kept), len(r.Kept)+len(r.Removed))
	return nil
}
