package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// GitInfoAdapter implements domain.GitInfo using go-git. The workflow
// directory usually sits inside a repository checkout, so lookups walk
// up to the enclosing .git directory.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

var openOptions = &git.PlainOpenOptions{DetectDotGit: true}

func (g *GitInfoAdapter) IsGitRepo(path string) bool {
	_, err := git.PlainOpenWithOptions(path, openOptions)
	return err == nil
}

func (g *GitInfoAdapter) CommitHash(path string) (string, error) {
	repo, err := git.PlainOpenWithOptions(path, openOptions)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

func (g *GitInfoAdapter) Branch(path string) (string, error) {
	repo, err := git.PlainOpenWithOptions(path, openOptions)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", nil
	}
	return head.Name().Short(), nil
}
