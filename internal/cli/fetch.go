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
	"log"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/docpub-project/docpub/internal/artifact"
	"github.com/docpub-project/docpub/internal/site"
)

type fetchCmd struct {
	commandBase
	tag        string
	artifactID int64
	version    string
	token      string
	force      bool
}

func (*fetchCmd) Name() string {
	return "fetch"
}

func (*fetchCmd) Description() string {
	return "Download a docs.zip release asset or workflow artifact and\nunpack it as a new doc version folder."
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	c.commandBase.SetFlags(f)
	f.StringVar(&c.tag, "tag", "", "release tag holding the docs.zip asset")
	f.Int64Var(&c.artifactID, "artifact-id", 0, "workflow artifact id, for repository-dispatch events")
	f.StringVar(&c.version, "version", "", "doc version folder to create, defaults to the tag")
	f.StringVar(&c.token, "token", "", "GitHub API token, defaults to $GITHUB_TOKEN")
	f.BoolVar(&c.force, "force", false, "replace the version folder if it already exists")
}

func (c *fetchCmd) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.New("unsupported arguments")
	}
	if (c.tag == "") == (c.artifactID == 0) {
		return errors.New("exactly one of --tag or --artifact-id is required")
	}
	version := c.version
	if version == "" {
		version = c.tag
	}
	if !site.IsVersion(version) {
		return fmt.Errorf("%q is not a valid doc version; pass --version", version)
	}
	s, err := c.site()
	if err != nil {
		return err
	}
	if s.Config.Owner == "" {
		return fmt.Errorf("owner and repo must be set in %s", site.ConfigName)
	}
	token := c.token
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	dest := s.VersionPath(version)
	if _, err = os.Stat(dest); err == nil && !c.force {
		return fmt.Errorf("doc version %s already exists; pass --force to replace it", version)
	}

	client := &artifact.Client{Owner: s.Config.Owner, Repo: s.Config.Repo, Token: token}
	tmp, err := os.MkdirTemp("", "docpub-fetch-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)
	var archive string
	if c.tag != "" {
		archive, err = client.FetchRelease(ctx, c.tag, tmp)
	} else {
		archive, err = client.FetchArtifact(ctx, c.artifactID, tmp)
	}
	if err != nil {
		return err
	}
	log.Printf("downloaded %s", archive)
	if err = artifact.Extract(ctx, archive, dest); err != nil {
		return err
	}
	versions, err := s.Discover()
	if err != nil {
		return err
	}
	if err = s.WriteSiteFiles(versions); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "fetched %s\n", version)
	return nil
}
