package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/studycoach/internal/errors"
	"github.com/example/studycoach/internal/models"
	"github.com/example/studycoach/internal/services"
	"github.com/example/studycoach/internal/testutil"
)

func TestAddResource(t *testing.T) {
	store := testutil.TempStore(t)
	svc := services.NewResourceService(store)

	resource, err := svc.Add(context.Background(), "Fast.ai", "Course", "https://fast.ai",
		models.DifficultyIntermediate, "Practical deep learning", []string{"deep learning"})

	require.NoError(t, err)
	assert.NotEmpty(t, resource.ID)
	assert.Equal(t, "course", resource.Type, "type is normalized to lowercase")
	assert.Equal(t, models.ResourceTodo, resource.Status)
	assert.False(t, resource.AddedAt.IsZero())

	state := store.Load()
	assert.Len(t, state.Resources, 1)
}

func TestAddResource_TopicsDefaultToTitle(t *testing.T) {
	svc := services.NewResourceService(testutil.TempStore(t))

	resource, err := svc.Add(context.Background(), "CS229", "course", "https://cs229.stanford.edu",
		models.DifficultyAdvanced, "", nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"CS229"}, resource.MappedTopics)
}

func TestAddResource_RejectsEmptyTitle(t *testing.T) {
	svc := services.NewResourceService(testutil.TempStore(t))

	_, err := svc.Add(context.Background(), "", "course", "https://x", models.DifficultyBeginner, "", nil)

	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestSetResourceStatus_CompletedStampsTime(t *testing.T) {
	store := testutil.TempStore(t)
	svc := services.NewResourceService(store)
	ctx := context.Background()

	resource, err := svc.Add(ctx, "Fast.ai", "course", "https://fast.ai", models.DifficultyBeginner, "", nil)
	require.NoError(t, err)

	updated, err := svc.SetStatus(ctx, resource.ID, models.ResourceCompleted)

	require.NoError(t, err)
	assert.Equal(t, models.ResourceCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)

	persisted := store.Load()
	assert.Equal(t, models.ResourceCompleted, persisted.Resources[0].Status)
	assert.NotNil(t, persisted.Resources[0].CompletedAt)
}

func TestSetResourceStatus_Unknown(t *testing.T) {
	svc := services.NewResourceService(testutil.TempStore(t))

	_, err := svc.SetStatus(context.Background(), "missing", models.ResourceInProgress)

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestResourcesByTopic(t *testing.T) {
	svc := services.NewResourceService(testutil.TempStore(t))
	ctx := context.Background()

	_, err := svc.Add(ctx, "Fast.ai", "course", "https://fast.ai", models.DifficultyBeginner, "", []string{"deep learning"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, "CS229", "course", "https://cs229.stanford.edu", models.DifficultyAdvanced, "", []string{"classical ml"})
	require.NoError(t, err)

	matched, err := svc.ByTopic(ctx, "deep learning")

	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Fast.ai", matched[0].Title)
}
