package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentForTest(t *testing.T, notifier *recordingNotifier) usecase.ContentUsecase {
	t.Helper()

	return NewContentService(ContentServiceParams{
		Local:    testLocal(t),
		Notifier: notifier,
		Logger:   testLogger(),
	})
}

func TestContentService_RecordPostView(t *testing.T) {
	content := newContentForTest(t, &recordingNotifier{})
	ctx := context.Background()

	before, err := content.GetPost(ctx, 1)
	require.NoError(t, err)

	after, err := content.RecordPostView(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, before.Views+1, after.Views)
	assert.Equal(t, before.Likes, after.Likes, "only the view counter moves")
}

func TestContentService_LikePost(t *testing.T) {
	notifier := &recordingNotifier{}
	content := newContentForTest(t, notifier)
	ctx := context.Background()

	before, err := content.GetPost(ctx, 1)
	require.NoError(t, err)

	after, err := content.LikePost(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, before.Likes+1, after.Likes)

	// Counter bumps are updates like any other.
	assert.Equal(t, []string{"post.updated"}, notifier.kinds())
}

func TestContentService_BumpUnknownPost(t *testing.T) {
	content := newContentForTest(t, &recordingNotifier{})

	_, err := content.RecordPostView(context.Background(), 9999)
	assert.ErrorIs(t, err, repository.ErrPostNotFound)
}
