package land

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Mergeable states reported by GitHub
const (
	MergeStateUnknown  = "unknown"
	MergeStateUnstable = "unstable"
	MergeStateBlocked  = "blocked"
	MergeStateDirty    = "dirty"
	MergeStateClean    = "clean"
)

const (
	defaultPollInterval = 15 * time.Second

	// GitHub computes the mergeable state asynchronously; a fresh PR often
	// reports "unknown" until the computation settles.
	unknownSettleDelay = 3 * time.Second
)

// Clock abstracts wall-clock time and sleeping so poll timing is testable
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// pollSession tracks per-invocation poll state. One session per PR check;
// never reused across checks.
type pollSession struct {
	started       time.Time
	waitingPosted bool
}

// PollMergeState waits until the PR's merge state reaches a terminal
// outcome. "unstable" is the only state that re-enters the loop: it means
// checks are still running, and only the land-blocking subset of them gates
// progress. Every other state resolves immediately, successfully for
// "clean" (and for "unstable" once all blocking checks pass), fatally
// otherwise.
func (c *Client) PollMergeState(ctx context.Context, prNumber int) error {
	session := pollSession{started: c.opts.Clock.Now()}

	for {
		pr, err := c.gh.GetPR(ctx, c.opts.Owner, c.opts.Repo, prNumber)
		if err != nil {
			return &StatusFetchError{PR: prNumber, Err: err}
		}

		state := pr.MergeableState
		if state == MergeStateUnknown {
			// One bounded settle retry, then take whatever comes back.
			c.opts.Clock.Sleep(unknownSettleDelay)
			pr, err = c.gh.GetPR(ctx, c.opts.Owner, c.opts.Repo, prNumber)
			if err != nil {
				return &StatusFetchError{PR: prNumber, Err: err}
			}
			state = pr.MergeableState
		}

		switch state {
		case MergeStateClean:
			if session.waitingPosted {
				if err := c.noter.Note(ctx, readyMessage(prNumber)); err != nil {
					return err
				}
			}
			return nil

		case MergeStateBlocked:
			return &BlockedError{PR: prNumber}

		case MergeStateDirty:
			return &DirtyError{PR: prNumber}

		case MergeStateUnknown:
			// Still unsettled after the retry; poll again later.
			if err := session.checkDeadline(c.opts.Clock, c.opts.MaxWait, prNumber); err != nil {
				return err
			}
			c.opts.Clock.Sleep(c.opts.Interval)

		case MergeStateUnstable:
			if err := session.checkDeadline(c.opts.Clock, c.opts.MaxWait, prNumber); err != nil {
				return err
			}

			records, err := c.gh.CombinedStatus(ctx, c.opts.Owner, c.opts.Repo, pr.HeadSHA)
			if err != nil {
				return &StatusFetchError{PR: prNumber, Err: err}
			}

			switch cls := Classify(records, c.opts.Blocking); cls.State {
			case StatusFailed:
				return &ChecksFailedError{PR: prNumber, Contexts: cls.Contexts}

			case StatusSuccess:
				// GitHub still says "unstable", but every check we care
				// about has passed. Non-blocking checks may run forever.
				if err := c.noter.Note(ctx, readyMessage(prNumber)); err != nil {
					return err
				}
				return nil

			case StatusPending:
				if !session.waitingPosted {
					msg := fmt.Sprintf("Waiting for still-running checks on PR #%d: %s",
						prNumber, strings.Join(cls.Contexts, ", "))
					if err := c.noter.Note(ctx, msg); err != nil {
						return err
					}
					session.waitingPosted = true
				}
				c.opts.Clock.Sleep(c.opts.Interval)
			}

		default:
			return &UnexpectedStateError{PR: prNumber, State: state}
		}
	}
}

// checkDeadline fails the session once elapsed wall-clock time exceeds the
// configured maximum wait.
func (s *pollSession) checkDeadline(clock Clock, maxWait time.Duration, prNumber int) error {
	if elapsed := clock.Now().Sub(s.started); elapsed > maxWait {
		return &TimeoutError{PR: prNumber, Waited: elapsed}
	}
	return nil
}

func readyMessage(prNumber int) string {
	return fmt.Sprintf("All land-blocking checks passed, PR #%d is ready to be landed.", prNumber)
}
