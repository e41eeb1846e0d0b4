package land

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"landcheck/internal/gh"
)

func TestCheckApprovals(t *testing.T) {
	ctx := context.Background()

	approved := []gh.Review{
		{Author: "bob", State: "commented"},
		{Author: "carol", State: "approved"},
	}
	notApproved := []gh.Review{
		{Author: "bob", State: "changes_requested"},
	}

	t.Run("every PR approved", func(t *testing.T) {
		mockGH := &MockGithubClient{}
		mockGH.On("ListReviews", mock.Anything, "octo", "widgets", 10).Return(approved, nil)
		mockGH.On("ListReviews", mock.Anything, "octo", "widgets", 11).Return(approved, nil)

		client := newTestClient(&MockGitClient{}, mockGH, &fakeNoter{}, Options{})
		err := client.CheckApprovals(ctx, []int{10, 11})

		require.NoError(t, err)
		mockGH.AssertExpectations(t)
	})

	t.Run("fails fast on the first unapproved PR", func(t *testing.T) {
		mockGH := &MockGithubClient{}
		mockGH.On("ListReviews", mock.Anything, "octo", "widgets", 10).Return(approved, nil)
		mockGH.On("ListReviews", mock.Anything, "octo", "widgets", 11).Return(notApproved, nil)

		client := newTestClient(&MockGitClient{}, mockGH, &fakeNoter{}, Options{})
		err := client.CheckApprovals(ctx, []int{10, 11, 12})

		var unapproved *NotApprovedError
		require.ErrorAs(t, err, &unapproved)
		assert.Equal(t, 11, unapproved.PR)
		mockGH.AssertNotCalled(t, "ListReviews", mock.Anything, "octo", "widgets", 12)
	})

	t.Run("no reviews at all", func(t *testing.T) {
		mockGH := &MockGithubClient{}
		mockGH.On("ListReviews", mock.Anything, "octo", "widgets", 10).Return([]gh.Review{}, nil)

		client := newTestClient(&MockGitClient{}, mockGH, &fakeNoter{}, Options{})
		err := client.CheckApprovals(ctx, []int{10})

		var unapproved *NotApprovedError
		require.ErrorAs(t, err, &unapproved)
		assert.Equal(t, 10, unapproved.PR)
	})

	t.Run("review fetch failure", func(t *testing.T) {
		mockGH := &MockGithubClient{}
		mockGH.On("ListReviews", mock.Anything, "octo", "widgets", 10).
			Return(nil, errors.New("rate limited"))

		client := newTestClient(&MockGitClient{}, mockGH, &fakeNoter{}, Options{})
		err := client.CheckApprovals(ctx, []int{10})

		var fetchErr *ReviewFetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, 10, fetchErr.PR)
	})
}
