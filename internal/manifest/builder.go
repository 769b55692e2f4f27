package manifest

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/gitref/internal/git"
	"github.com/jokarl/gitref/internal/giturl"
	"github.com/jokarl/gitref/internal/refs"
	"github.com/jokarl/gitref/internal/resolve"
)

// RemoteLister lists the tags and heads of a remote repository in
// git ls-remote format. *git.Client implements it.
type RemoteLister interface {
	ListRemoteRefs(ctx context.Context, url string) (string, error)
}

var _ RemoteLister = (*git.Client)(nil)

// Builder turns specs into manifests. It keeps no state between calls and
// is safe for concurrent use.
type Builder struct {
	lister   RemoteLister
	resolver *resolve.Resolver
	logger   hclog.Logger
}

// NewBuilder creates a Builder that logs warnings to stderr.
func NewBuilder(lister RemoteLister) *Builder {
	return NewBuilderWithLogger(lister, hclog.New(&hclog.LoggerOptions{
		Name:   "gitref",
		Level:  hclog.Warn,
		Output: os.Stderr,
	}))
}

// NewBuilderWithLogger creates a Builder with a custom logger.
func NewBuilderWithLogger(lister RemoteLister, logger hclog.Logger) *Builder {
	return &Builder{
		lister:   lister,
		resolver: resolve.New(),
		logger:   logger,
	}
}

// Build resolves spec against its remote.
//
// A missing git executable and a done ctx fail the build. Any other listing
// failure is recorded on Manifest.RemoteErr and resolution continues without
// an index, so only a full sha committish can still produce an identifier.
// Semver range errors are returned as *resolve.InvalidRangeError or
// *resolve.NoMatchingVersionError.
func (b *Builder) Build(ctx context.Context, spec Spec) (*Manifest, error) {
	normed, err := giturl.Normalize(spec.Locator)
	if err != nil {
		return nil, fmt.Errorf("invalid locator for %s: %w", spec.Name, err)
	}
	rawRef, err := url.PathUnescape(normed.Branch)
	if err != nil {
		return nil, fmt.Errorf("invalid committish %q for %s: %w", normed.Branch, spec.Name, err)
	}

	idx, remoteErr := b.Index(ctx, normed.URL)
	if remoteErr != nil {
		if errors.Is(remoteErr, git.ErrGitNotFound) || ctx.Err() != nil {
			return nil, remoteErr
		}
		b.logger.Warn("remote listing failed, resolving without it", "url", normed.URL, "error", remoteErr)
	}

	m := &Manifest{
		RepositoryURL: normed.URL,
		Spec:          spec,
		RawCommittish: rawRef,
		RemoteErr:     remoteErr,
	}

	doc, err := b.resolver.Resolve(idx, rawRef, spec.Name)
	switch {
	case err == nil:
		id := resolvedID(normed.URL, doc.SHA)
		m.Resolved = id
		m.UniqueResolved = id
		m.Ref = &doc
		b.logger.Debug("resolved", "spec", spec.String(), "sha", doc.SHA, "ref", doc.Name)

	case errors.Is(err, resolve.ErrNotResolvable):
		// Commit ids are immutable, so a full sha is cacheable unconfirmed.
		if IsFullSHA(rawRef) {
			id := resolvedID(normed.URL, rawRef)
			m.Resolved = id
			m.UniqueResolved = id
		}
		b.logger.Debug("not resolvable from remote listing", "spec", spec.String(), "committish", rawRef, "full_sha", IsFullSHA(rawRef))

	default:
		if remoteErr != nil {
			err = errors.Join(err, remoteErr)
		}
		return nil, fmt.Errorf("failed to resolve %s: %w", spec.Name, err)
	}

	return m, nil
}

// Index lists url and builds its ref index. The index is nil on error.
func (b *Builder) Index(ctx context.Context, url string) (*refs.Index, error) {
	listing, err := b.lister.ListRemoteRefs(ctx, url)
	if err != nil {
		return nil, err
	}

	idx := refs.Build(listing)
	b.logger.Trace("built remote index", "url", url, "refs", idx.Len(), "versions", len(idx.Versions()))
	return idx, nil
}
