package vcs

import (
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/dorc/pkg/errors"
	"github.com/arthur-debert/dorc/pkg/logging"
)

// walkLimit bounds the ahead/behind commit walk so a pathological history
// cannot stall an interactive prompt render
const walkLimit = 512

// GitProvider implements StatusProvider on top of go-git
type GitProvider struct {
	logger zerolog.Logger
}

// NewGitProvider creates the go-git backed status provider
func NewGitProvider() *GitProvider {
	return &GitProvider{logger: logging.GetLogger("vcs")}
}

// Status reports repository state for dir, searching parent directories
// for the repository root the way git itself does.
func (p *GitProvider) Status(dir string) (*Status, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if err == git.ErrRepositoryNotExists {
			return nil, errors.Wrap(err, errors.ErrNotARepository, "not inside a repository")
		}
		return nil, errors.Wrap(err, errors.ErrVcsQueryFailure, "failed to open repository")
	}

	head, err := repo.Head()
	if err != nil {
		// Freshly initialized repository with no commits
		return nil, errors.Wrap(err, errors.ErrVcsQueryFailure, "failed to resolve HEAD")
	}

	st := &Status{}
	if head.Name().IsBranch() {
		st.Branch = head.Name().Short()
	} else {
		st.Branch = head.Hash().String()[:7]
	}

	if wt, err := repo.Worktree(); err == nil {
		if wtStatus, err := wt.Status(); err == nil {
			for _, fs := range wtStatus {
				if fs.Worktree == git.Untracked {
					st.Untracked = true
					continue
				}
				if fs.Worktree != git.Unmodified || fs.Staging != git.Unmodified {
					st.Dirty = true
				}
			}
		} else {
			p.logger.Debug().Err(err).Str("dir", dir).Msg("worktree status query failed")
		}
	}

	if _, err := repo.Reference(plumbing.ReferenceName("refs/stash"), true); err == nil {
		st.Stashed = true
	}

	if head.Name().IsBranch() {
		p.fillUpstreamDistance(repo, head, st)
	}

	return st, nil
}

// fillUpstreamDistance computes ahead/behind counts against the upstream
// tracking branch. Missing upstream configuration leaves both at zero.
func (p *GitProvider) fillUpstreamDistance(repo *git.Repository, head *plumbing.Reference, st *Status) {
	branchCfg, err := repo.Branch(head.Name().Short())
	if err != nil || branchCfg.Remote == "" {
		return
	}

	remoteRef := plumbing.NewRemoteReferenceName(branchCfg.Remote, head.Name().Short())
	upstream, err := repo.Reference(remoteRef, true)
	if err != nil {
		return
	}

	if head.Hash() == upstream.Hash() {
		return
	}

	local := ancestorSet(repo, head.Hash())
	remote := ancestorSet(repo, upstream.Hash())

	for h := range local {
		if _, shared := remote[h]; !shared {
			st.Ahead++
		}
	}
	for h := range remote {
		if _, shared := local[h]; !shared {
			st.Behind++
		}
	}
}

// ancestorSet collects commits reachable from start, bounded by walkLimit
func ancestorSet(repo *git.Repository, start plumbing.Hash) map[plumbing.Hash]struct{} {
	seen := make(map[plumbing.Hash]struct{})
	queue := []plumbing.Hash{start}

	for len(queue) > 0 && len(seen) < walkLimit {
		h := queue[0]
		queue = queue[1:]
		if _, done := seen[h]; done {
			continue
		}
		seen[h] = struct{}{}

		commit, err := repo.CommitObject(h)
		if err != nil {
			continue
		}
		_ = commit.Parents().ForEach(func(parent *object.Commit) error {
			if _, done := seen[parent.Hash]; !done {
				queue = append(queue, parent.Hash)
			}
			return nil
		})
	}
	return seen
}
