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

package site

import (
	"fmt"
	"os"
)

// PruneResult describes what a prune kept and removed.
type PruneResult struct {
	// Kept are the retained versions, newest first.
	Kept []string
	// Removed are the deleted versions, newest first.
	Removed []string
}

// Prune keeps the `keep` highest doc versions and deletes every other
// version folder from docs/ along with its paired tutorial collection
// folder. A version without a tutorial folder is fine; old releases
// predate the tutorials.
//
// The two generated site files are always regenerated afterwards, even
// when nothing was removed, so a stale index.html converges without a
// separate render run. In dry-run mode nothing on disk is touched.
func (s *Site) Prune(keep int, dryRun bool) (*PruneResult, error) {
	if keep <= 0 {
		return nil, fmt.Errorf("number of versions to keep must be positive, got %d", keep)
	}
	versions, err := s.Discover()
	if err != nil {
		return nil, err
	}
	r := &PruneResult{Kept: versions}
	if len(versions) > keep {
		r.Kept = versions[:keep]
		r.Removed = versions[keep:]
	}
	if dryRun {
		return r, nil
	}
	for _, v := range r.Removed {
		if err = os.RemoveAll(s.VersionPath(v)); err != nil {
			return r, fmt.Errorf("removing %s: %w", v, err)
		}
		// RemoveAll on a missing tutorial folder is a no-op.
		if err = os.RemoveAll(s.TutorialPath(v)); err != nil {
			return r, fmt.Errorf("removing tutorials for %s: %w", v, err)
		}
	}
	if err = s.WriteSiteFiles(r.Kept); err != nil {
		return r, err
	}
	return r, nil
}
