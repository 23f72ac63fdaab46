package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
)

// DefaultCloneTimeout bounds a clone when the context has no deadline.
const DefaultCloneTimeout = 2 * time.Minute

// GitOptions describe a configuration stored in a git repository.
type GitOptions struct {
	// URL of the repository. Local paths work too.
	URL string

	// Ref is a branch or tag name, or a full reference such as
	// "refs/tags/v1.0.0". Empty uses the remote HEAD.
	Ref string

	// Path is the configuration inside the repository.
	Path string

	// Username and Token enable HTTPS basic authentication.
	Username string
	Token    string

	// Depth limits the fetched history. 0 fetches everything.
	Depth int

	Timeout time.Duration
}

// GitSource clones a repository into a temporary directory.
type GitSource struct {
	opts GitOptions
}

// NewGitSource creates a git source.
func NewGitSource(opts GitOptions) *GitSource {
	if opts.Timeout == 0 {
		opts.Timeout = DefaultCloneTimeout
	}
	return &GitSource{opts: opts}
}

// Resolve clones the repository and returns the configuration path inside
// the clone. Cleanup removes the clone.
func (s *GitSource) Resolve(ctx context.Context) (string, func(), error) {
	if s.opts.URL == "" {
		return "", noop, &SourceError{Source: s.String(), Operation: "clone", Cause: errors.New("repository URL cannot be empty")}
	}

	dir, err := os.MkdirTemp("", "mechcfg-git-")
	if err != nil {
		return "", noop, &SourceError{Source: s.String(), Operation: "clone", Cause: err}
	}
	cleanup := func() { os.RemoveAll(dir) }

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	if err := s.clone(ctx, dir); err != nil {
		cleanup()
		return "", noop, &SourceError{Source: s.String(), Operation: "clone", Cause: err}
	}

	path := filepath.Join(dir, filepath.FromSlash(s.opts.Path))
	if !strings.HasPrefix(path, filepath.Clean(dir)) {
		cleanup()
		return "", noop, &SourceError{Source: s.String(), Operation: "resolve",
			Cause: fmt.Errorf("path %q escapes the repository", s.opts.Path)}
	}
	return path, cleanup, nil
}

func (s *GitSource) clone(ctx context.Context, dir string) error {
	var lastErr error
	for _, ref := range s.candidateRefs() {
		opts := &gogit.CloneOptions{
			URL:           s.opts.URL,
			Auth:          s.auth(),
			ReferenceName: ref,
			SingleBranch:  ref != "",
			Depth:         s.opts.Depth,
		}
		_, err := gogit.PlainCloneContext(ctx, dir, false, opts)
		if err == nil {
			return nil
		}
		lastErr = err
		if !isMissingReference(err) {
			return err
		}
		// A failed clone can leave a partial .git behind.
		if err := os.RemoveAll(filepath.Join(dir, ".git")); err != nil {
			return err
		}
	}
	return lastErr
}

// candidateRefs lists the references tried in order: a bare name is tried
// as a branch, then as a tag.
func (s *GitSource) candidateRefs() []plumbing.ReferenceName {
	ref := s.opts.Ref
	switch {
	case ref == "":
		return []plumbing.ReferenceName{""}
	case strings.HasPrefix(ref, "refs/"):
		return []plumbing.ReferenceName{plumbing.ReferenceName(ref)}
	default:
		return []plumbing.ReferenceName{
			plumbing.NewBranchReferenceName(ref),
			plumbing.NewTagReferenceName(ref),
		}
	}
}

func (s *GitSource) auth() transport.AuthMethod {
	if s.opts.Token == "" {
		return nil
	}
	username := s.opts.Username
	if username == "" {
		username = "git"
	}
	return &http.BasicAuth{Username: username, Password: s.opts.Token}
}

func (s *GitSource) String() string {
	var sb strings.Builder
	sb.WriteString(s.opts.URL)
	if s.opts.Ref != "" {
		sb.WriteString("@" + s.opts.Ref)
	}
	if s.opts.Path != "" {
		sb.WriteString(":" + s.opts.Path)
	}
	return sb.String()
}

func isMissingReference(err error) bool {
	return errors.Is(err, plumbing.ErrReferenceNotFound) ||
		strings.Contains(err.Error(), "couldn't find remote ref")
}

// IsRepositoryURL reports whether location names a remote repository rather
// than a local path.
func IsRepositoryURL(location string) bool {
	for _, prefix := range []string{"https://", "http://", "ssh://", "git://", "git@"} {
		if strings.HasPrefix(location, prefix) {
			return true
		}
	}
	return strings.HasSuffix(location, ".git")
}
