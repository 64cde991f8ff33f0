package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/foryou/internal/application/stream"
	"github.com/tesso57/foryou/internal/application/usecase"
	"github.com/tesso57/foryou/internal/domain/foryou"
	"github.com/tesso57/foryou/internal/domain/news"
	"github.com/tesso57/foryou/internal/infrastructure/fake"
	"github.com/tesso57/foryou/internal/infrastructure/fixture"
)

func next(t *testing.T, sub *stream.Subscription[foryou.FeedUIState]) foryou.FeedUIState {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	st, err := sub.Next(ctx)
	require.NoError(t, err)
	return st
}

func TestForYouViewModel_FakeRepositories(t *testing.T) {
	vm := usecase.NewForYouViewModel(fake.TopicRepository{}, fake.NewsRepository{})
	sub := vm.Subscribe()
	defer sub.Close()
	vm.Start(context.Background())
	defer vm.Close()

	assert.Equal(t, foryou.Loading{}, next(t, sub))
	st := next(t, sub)
	require.IsType(t, foryou.FeedWithTopicSelection{}, st)
	withSel := st.(foryou.FeedWithTopicSelection)
	assert.Empty(t, withSel.Topics)
	assert.Empty(t, withSel.Feed)
	assert.False(t, withSel.CanSaveSelectedTopics())
}

func TestForYouViewModel_FakeRepositoriesOnboarded(t *testing.T) {
	vm := usecase.NewForYouViewModel(fake.TopicRepository{}, fake.NewsRepository{}, usecase.WithFollowedTopics([]int{3}))
	sub := vm.Subscribe()
	defer sub.Close()
	vm.Start(context.Background())
	defer vm.Close()

	assert.Equal(t, foryou.Loading{}, next(t, sub))
	assert.Equal(t, foryou.FeedWithoutTopicSelection{Feed: []news.SaveableNewsResource{}}, next(t, sub))
}

func TestForYouViewModel_FixtureRepositories(t *testing.T) {
	topics, newsRepo, err := fixture.Open("", "")
	require.NoError(t, err)

	vm := usecase.NewForYouViewModel(topics, newsRepo)
	sub := vm.Subscribe()
	defer sub.Close()
	vm.Start(context.Background())
	defer vm.Close()

	assert.Equal(t, foryou.Loading{}, next(t, sub))
	withSel := next(t, sub).(foryou.FeedWithTopicSelection)
	require.Len(t, withSel.Topics, 6)
	assert.Empty(t, withSel.Feed)

	vm.UpdateTopicSelection(1, true)
	_ = next(t, sub) // selection applied, feed not yet delivered
	withSel = next(t, sub).(foryou.FeedWithTopicSelection)
	ids := make([]int, 0, len(withSel.Feed))
	for _, r := range withSel.Feed {
		ids = append(ids, r.NewsResource.ID)
	}
	assert.Equal(t, []int{4, 3, 2}, ids)

	vm.UpdateNewsResourceSaved(3, true)
	withSel = next(t, sub).(foryou.FeedWithTopicSelection)
	assert.True(t, withSel.Feed[1].IsSaved)

	vm.SaveFollowedTopics()
	without := next(t, sub).(foryou.FeedWithoutTopicSelection)
	assert.Len(t, without.Feed, 3)
	assert.True(t, without.Feed[1].IsSaved)
}
