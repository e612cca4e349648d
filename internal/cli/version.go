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

// Version is the tool version. Incremented on releases.
var Version = [...]int{0, 1, 0}

type versionCmd struct{}

func (*versionCmd) Name() string {
	return "version"
}

func (*versionCmd) Description() string {
	return "Print the tool version."
}

func (*versionCmd) SetFlags(f *flag.FlagSet) {
}

func (*versionCmd) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.New("unsupported arguments")
	}
	fmt.Fprintf(stdout, "docpub v%d.%d.%d\n", Version[0], Version[1], Version[2])
	return nil
}
