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
	flag "github.com/spf13/pflag"

	"github.com/docpub-project/docpub/internal/site"
)

type commandBase struct {
	cwd string
}

func (c *commandBase) SetFlags(f *flag.FlagSet) {
	f.StringVarP(&c.cwd, "cwd", "C", ".", "directory of the documentation site checkout")
}

func (c *commandBase) site() (*site.Site, error) {
	return site.Open(c.cwd)
}
