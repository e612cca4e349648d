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

// Package artifact downloads generated doc trees from GitHub: either a
// docs.zip release asset or a workflow artifact named by a
// repository-dispatch event.
package artifact

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// AssetName is the release asset holding the generated doc tree.
const AssetName = "docs.zip"

// Client talks to the GitHub REST API for one repository.
type Client struct {
	Owner string
	Repo  string
	// Token authenticates API requests. Empty is fine for public
	// repositories, modulo rate limits.
	Token string
	// BaseURL overrides https://api.github.com in tests.
	BaseURL string
	// HTTP overrides http.DefaultClient in tests.
	HTTP *http.Client
}

type release struct {
	Assets []struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"assets"`
}

// FetchRelease downloads the docs.zip asset of the release tagged tag
// into dir and returns the path of the downloaded archive.
func (c *Client) FetchRelease(ctx context.Context, tag, dir string) (string, error) {
	b, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/releases/tags/%s", c.Owner, c.Repo, tag), "application/vnd.github+json")
	if err != nil {
		return "", fmt.Errorf("release %s: %w", tag, err)
	}
	defer b.Close()
	var r release
	if err = json.NewDecoder(b).Decode(&r); err != nil {
		return "", fmt.Errorf("release %s: %w", tag, err)
	}
	for _, a := range r.Assets {
		if a.Name == AssetName {
			// The asset url serves JSON metadata by default; requesting
			// octet-stream redirects to the binary content.
			return c.download(ctx, a.URL, dir)
		}
	}
	return "", fmt.Errorf("release %s has no %s asset", tag, AssetName)
}

// FetchArtifact downloads a workflow artifact by id into dir and
// returns the path of the downloaded archive. This is the
// repository-dispatch path, where the SDK's own CI names the artifact it
// just built.
func (c *Client) FetchArtifact(ctx context.Context, id int64, dir string) (string, error) {
	p, err := c.download(ctx, fmt.Sprintf("%s/repos/%s/%s/actions/artifacts/%d/zip", c.baseURL(), c.Owner, c.Repo, id), dir)
	if err != nil {
		return "", fmt.Errorf("artifact %d: %w", id, err)
	}
	return p, nil
}

// download streams url to a docs.zip file under dir, as in the CI job it
// replaces: fetch to disk first, unpack as a separate step.
func (c *Client) download(ctx context.Context, url, dir string) (string, error) {
	b, err := c.get(ctx, url, "application/octet-stream")
	if err != nil {
		return "", err
	}
	defer b.Close()
	p := filepath.Join(dir, AssetName)
	f, err := os.Create(p)
	if err != nil {
		return "", err
	}
	if _, err = io.Copy(f, b); err != nil {
		f.Close()
		return "", err
	}
	if err = f.Close(); err != nil {
		return "", err
	}
	return p, nil
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return "https://api.github.com"
}

func (c *Client) get(ctx context.Context, url, accept string) (io.ReadCloser, error) {
	if strings.HasPrefix(url, "/") {
		url = c.baseURL() + url
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return resp.Body, nil
}
