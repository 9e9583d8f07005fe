// Package update compares the running mx-modeler with its latest published
// release.
package update

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/go-github/v66/github"
	"github.com/hashicorp/go-version"
)

const defaultTimeout = 10 * time.Second

// ErrTimeout is returned when the release lookup exceeds the notifier timeout.
var ErrTimeout = errors.New("update check timed out")

// Info is the outcome of a release check.
type Info struct {
	Latest  string `json:"latest"`
	Current string `json:"current"`
	URL     string `json:"url,omitempty"`
	Cached  bool   `json:"cached,omitempty"`
}

// Available reports whether Latest is newer than Current. A Current that is
// not a version, such as a "dev" build, is never behind.
func (i Info) Available() bool {
	if !i.CurrentKnown() || i.Latest == "" {
		return false
	}
	latest, err := version.NewVersion(i.Latest)
	if err != nil {
		return i.Latest != i.Current
	}
	current, _ := version.NewVersion(i.Current)
	return latest.GreaterThan(current)
}

// CurrentKnown reports whether Current parses as a version.
func (i Info) CurrentKnown() bool {
	_, err := version.NewVersion(i.Current)
	return err == nil
}

// Notifier looks up the latest release of a GitHub repository.
type Notifier struct {
	Client    *github.Client
	Owner     string
	Repo      string
	Timeout   time.Duration
	CachePath string
	CacheTTL  time.Duration
	Logger    *log.Logger

	now func() time.Time
}

type release struct {
	version string
	url     string
}

// Check always returns within the notifier timeout: with the latest release,
// with the lookup error, or with ErrTimeout.
func (n *Notifier) Check(ctx context.Context, current string) (Info, error) {
	repo := n.Owner + "/" + n.Repo
	now := n.clock()

	if entry, ok := cachedRelease(n.CachePath, repo, n.CacheTTL, now); ok {
		n.logf("update check repo=%s cached latest=%s", repo, entry.Version)
		return Info{Latest: entry.Version, Current: current, URL: entry.URL, Cached: true}, nil
	}

	timeout := n.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		rel release
		err error
	}
	done := make(chan result, 1)
	go func() {
		rel, err := n.fetchLatest(ctx)
		done <- result{rel: rel, err: err}
	}()

	var res result
	select {
	case res = <-done:
	case <-ctx.Done():
		res = result{err: ctx.Err()}
	}

	if res.err != nil {
		if errors.Is(res.err, context.DeadlineExceeded) {
			res.err = fmt.Errorf("%w after %s", ErrTimeout, timeout)
		}
		n.logf("update check repo=%s failed: %v", repo, res.err)
		return Info{Current: current}, res.err
	}

	entry := cacheEntry{Repository: repo, Version: res.rel.version, URL: res.rel.url, FetchedAt: now}
	if err := storeRelease(n.CachePath, entry); err != nil {
		n.logf("update check repo=%s cache write failed: %v", repo, err)
	}
	n.logf("update check repo=%s latest=%s current=%s", repo, res.rel.version, current)
	return Info{Latest: res.rel.version, Current: current, URL: res.rel.url}, nil
}

func (n *Notifier) fetchLatest(ctx context.Context) (release, error) {
	client := n.Client
	if client == nil {
		client = github.NewClient(nil)
	}

	rel, _, err := client.Repositories.GetLatestRelease(ctx, n.Owner, n.Repo)
	if err != nil {
		return release{}, fmt.Errorf("query latest release of %s/%s: %w", n.Owner, n.Repo, err)
	}

	tag := strings.TrimPrefix(rel.GetTagName(), "v")
	if tag == "" {
		return release{}, fmt.Errorf("latest release of %s/%s has no tag", n.Owner, n.Repo)
	}
	return release{version: tag, url: rel.GetHTMLURL()}, nil
}

func (n *Notifier) clock() time.Time {
	if n.now != nil {
		return n.now()
	}
	return time.Now()
}

func (n *Notifier) logf(format string, v ...any) {
	if n == nil || n.Logger == nil {
		return
	}
	n.Logger.Printf(format, v...)
}
