package land

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"landcheck/internal/gh"
)

func unstablePR(number int) *gh.PR {
	return &gh.PR{Number: number, HeadSHA: "headsha", MergeableState: MergeStateUnstable}
}

func prInState(number int, state string) *gh.PR {
	return &gh.PR{Number: number, HeadSHA: "headsha", MergeableState: state}
}

func TestPollMergeState_TerminalStates(t *testing.T) {
	ctx := context.Background()

	t.Run("clean succeeds without notes", func(t *testing.T) {
		mockGH := &MockGithubClient{}
		mockGH.On("GetPR", mock.Anything, "octo", "widgets", 100).Return(prInState(100, MergeStateClean), nil)

		noter := &fakeNoter{}
		client := newTestClient(&MockGitClient{}, mockGH, noter, Options{})
		err := client.PollMergeState(ctx, 100)

		require.NoError(t, err)
		assert.Empty(t, noter.notes)
	})

	t.Run("blocked fails", func(t *testing.T) {
		mockGH := &MockGithubClient{}
		mockGH.On("GetPR", mock.Anything, "octo", "widgets", 100).Return(prInState(100, MergeStateBlocked), nil)

		client := newTestClient(&MockGitClient{}, mockGH, &fakeNoter{}, Options{})
		err := client.PollMergeState(ctx, 100)

		var blocked *BlockedError
		require.ErrorAs(t, err, &blocked)
		assert.Equal(t, 100, blocked.PR)
	})

	t.Run("dirty fails with merge conflicts", func(t *testing.T) {
		mockGH := &MockGithubClient{}
		mockGH.On("GetPR", mock.Anything, "octo", "widgets", 100).Return(prInState(100, MergeStateDirty), nil)

		client := newTestClient(&MockGitClient{}, mockGH, &fakeNoter{}, Options{})
		err := client.PollMergeState(ctx, 100)

		var dirty *DirtyError
		require.ErrorAs(t, err, &dirty)
		assert.Contains(t, err.Error(), "merge conflicts")
	})

	t.Run("unrecognized state is reported literally", func(t *testing.T) {
		mockGH := &MockGithubClient{}
		mockGH.On("GetPR", mock.Anything, "octo", "widgets", 100).Return(prInState(100, "weird"), nil)

		client := newTestClient(&MockGitClient{}, mockGH, &fakeNoter{}, Options{})
		err := client.PollMergeState(ctx, 100)

		var unexpected *UnexpectedStateError
		require.ErrorAs(t, err, &unexpected)
		assert.Equal(t, "weird", unexpected.State)
	})
}

func TestPollMergeState_UnknownSettles(t *testing.T) {
	ctx := context.Background()

	mockGH := &MockGithubClient{}
	mockGH.On("GetPR", mock.Anything, "octo", "widgets", 100).Return(prInState(100, MergeStateUnknown), nil).Once()
	mockGH.On("GetPR", mock.Anything, "octo", "widgets", 100).Return(prInState(100, MergeStateClean), nil).Once()

	clock := newFakeClock()
	started := clock.Now()
	client := newTestClient(&MockGitClient{}, mockGH, &fakeNoter{}, Options{Clock: clock})
	err := client.PollMergeState(ctx, 100)

	require.NoError(t, err)
	// Exactly one settle pause, no poll-interval sleeps
	assert.Equal(t, unknownSettleDelay, clock.Now().Sub(started))
	mockGH.AssertExpectations(t)
}

func TestPollMergeState_SuccessOnUnstable(t *testing.T) {
	ctx := context.Background()

	mockGH := &MockGithubClient{}
	mockGH.On("GetPR", mock.Anything, "octo", "widgets", 100).Return(unstablePR(100), nil)
	mockGH.On("CombinedStatus", mock.Anything, "octo", "widgets", "headsha").Return([]gh.StatusRecord{
		{Context: "ci/build", State: "success"},
		{Context: "docs/preview", State: "pending"},
	}, nil)

	noter := &fakeNoter{}
	client := newTestClient(&MockGitClient{}, mockGH, noter, Options{
		Blocking: NewBlockingSet([]string{"ci/build"}),
	})
	err := client.PollMergeState(ctx, 100)

	require.NoError(t, err)
	require.Len(t, noter.notes, 1)
	assert.Contains(t, noter.notes[0], "ready to be landed")
	// Terminal on the first pass: status fetched exactly once
	mockGH.AssertNumberOfCalls(t, "CombinedStatus", 1)
}

func TestPollMergeState_ChecksFailed(t *testing.T) {
	ctx := context.Background()

	mockGH := &MockGithubClient{}
	mockGH.On("GetPR", mock.Anything, "octo", "widgets", 100).Return(unstablePR(100), nil)
	mockGH.On("CombinedStatus", mock.Anything, "octo", "widgets", "headsha").Return([]gh.StatusRecord{
		{Context: "ci/build", State: "failure"},
		{Context: "ci/test", State: "pending"},
	}, nil)

	client := newTestClient(&MockGitClient{}, mockGH, &fakeNoter{}, Options{
		Blocking: NewBlockingSet([]string{"ci/build", "ci/test"}),
	})
	err := client.PollMergeState(ctx, 100)

	var failed *ChecksFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, []string{"ci/build"}, failed.Contexts)
}

func TestPollMergeState_WaitsThenTimesOut(t *testing.T) {
	ctx := context.Background()

	mockGH := &MockGithubClient{}
	mockGH.On("GetPR", mock.Anything, "octo", "widgets", 100).Return(unstablePR(100), nil)
	mockGH.On("CombinedStatus", mock.Anything, "octo", "widgets", "headsha").Return([]gh.StatusRecord{
		{Context: "ci/build", State: "pending"},
	}, nil)

	noter := &fakeNoter{}
	client := newTestClient(&MockGitClient{}, mockGH, noter, Options{
		Blocking: NewBlockingSet([]string{"ci/build"}),
		MaxWait:  30 * time.Second,
		Interval: 15 * time.Second,
	})
	err := client.PollMergeState(ctx, 100)

	var timeout *TimeoutError
	require.ErrorAs(t, err, &timeout)
	assert.Equal(t, 100, timeout.PR)
	assert.Greater(t, timeout.Waited, 30*time.Second)

	// The waiting note is posted once, not on every iteration
	require.Len(t, noter.notes, 1)
	assert.Contains(t, noter.notes[0], "ci/build")
}

func TestPollMergeState_CleanAfterWaiting(t *testing.T) {
	ctx := context.Background()

	mockGH := &MockGithubClient{}
	mockGH.On("GetPR", mock.Anything, "octo", "widgets", 100).Return(unstablePR(100), nil).Once()
	mockGH.On("GetPR", mock.Anything, "octo", "widgets", 100).Return(prInState(100, MergeStateClean), nil).Once()
	mockGH.On("CombinedStatus", mock.Anything, "octo", "widgets", "headsha").Return([]gh.StatusRecord{
		{Context: "ci/build", State: "pending"},
	}, nil)

	noter := &fakeNoter{}
	client := newTestClient(&MockGitClient{}, mockGH, noter, Options{
		Blocking: NewBlockingSet([]string{"ci/build"}),
	})
	err := client.PollMergeState(ctx, 100)

	require.NoError(t, err)
	// Waiting note followed by a success note once the state turned clean
	require.Len(t, noter.notes, 2)
	assert.Contains(t, noter.notes[0], "Waiting")
	assert.Contains(t, noter.notes[1], "ready to be landed")
}
