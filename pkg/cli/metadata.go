package cli

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/pipeboard/pkg/domain/types"
)

// gitMetadata is what the simulate command reads from a local clone.
type gitMetadata struct {
	CommitID    string
	Message     string
	AuthorName  string
	AuthorEmail string
	Branch      string
	Owner       string
	RepoName    string
}

// readGitMetadata fills empty fields of meta from HEAD and the origin remote of
// the repository containing dir.
func readGitMetadata(dir string, meta *gitMetadata) error {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return goerr.Wrap(types.ErrInvalidOption.Wrap(err), "failed to open git repository",
			goerr.V("dir", dir),
		)
	}

	head, err := repo.Head()
	if err != nil {
		return goerr.Wrap(types.ErrInvalidOption.Wrap(err), "failed to get HEAD")
	}

	if meta.CommitID == "" {
		meta.CommitID = head.Hash().String()
	}
	if meta.Branch == "" && head.Name().IsBranch() {
		meta.Branch = head.Name().Short()
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return goerr.Wrap(types.ErrInvalidOption.Wrap(err), "failed to read HEAD commit",
			goerr.V("commit", head.Hash().String()),
		)
	}
	if meta.Message == "" {
		meta.Message = strings.TrimSpace(commit.Message)
	}
	if meta.AuthorName == "" {
		meta.AuthorName = commit.Author.Name
	}
	if meta.AuthorEmail == "" {
		meta.AuthorEmail = commit.Author.Email
	}

	if meta.Owner == "" || meta.RepoName == "" {
		remote, err := repo.Remote("origin")
		if err != nil {
			return goerr.Wrap(types.ErrInvalidOption.Wrap(err), "failed to get remote origin")
		}
		if len(remote.Config().URLs) == 0 {
			return goerr.Wrap(types.ErrInvalidOption, "no remote URL found")
		}

		owner, repoName, err := parseRemoteURL(remote.Config().URLs[0])
		if err != nil {
			return err
		}
		if meta.Owner == "" {
			meta.Owner = owner
		}
		if meta.RepoName == "" {
			meta.RepoName = repoName
		}
	}

	return nil
}

// parseRemoteURL extracts owner and repository from git@github.com:owner/repo.git
// or https://github.com/owner/repo.git.
func parseRemoteURL(url string) (string, string, error) {
	var path string
	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.Contains(url, "github.com/"):
		path = url[strings.Index(url, "github.com/")+len("github.com/"):]
	}

	ownerRepo := strings.Split(strings.TrimSuffix(strings.TrimSuffix(path, "/"), ".git"), "/")
	if len(ownerRepo) != 2 || ownerRepo[0] == "" || ownerRepo[1] == "" {
		return "", "", goerr.Wrap(types.ErrInvalidOption, "failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
	}
	return ownerRepo[0], ownerRepo[1], nil
}
