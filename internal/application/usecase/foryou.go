package usecase

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tesso57/foryou/internal/application/stream"
	"github.com/tesso57/foryou/internal/domain/foryou"
	"github.com/tesso57/foryou/internal/domain/news"
)

// ForYouViewModel derives the feed screen state from the repositories and
// the user's in-memory interests, and publishes every change as an
// immutable snapshot.
type ForYouViewModel struct {
	topics TopicRepository
	news   NewsRepository
	logger *log.Logger
	source *stream.Source[foryou.FeedUIState]

	mu           sync.Mutex
	ctx          context.Context
	cancel       context.CancelFunc
	closed       bool
	wg           sync.WaitGroup
	onboarded    bool
	followed     map[int]struct{}
	inProgress   map[int]struct{}
	saved        map[int]struct{}
	allTopics    []news.Topic
	topicsLoaded bool
	feed         []news.NewsResource
	feedLoaded   bool
	feedFilter   string
	feedGen      uint64
	cancelFeed   context.CancelFunc
}

// ViewModelOption configures a ForYouViewModel.
type ViewModelOption func(*ForYouViewModel)

// WithLogger sets the logger used by the view-model.
func WithLogger(logger *log.Logger) ViewModelOption {
	return func(vm *ForYouViewModel) {
		if logger != nil {
			vm.logger = logger
		}
	}
}

// WithFollowedTopics marks the given topics as already followed, which
// skips topic selection.
func WithFollowedTopics(ids []int) ViewModelOption {
	return func(vm *ForYouViewModel) {
		if len(ids) == 0 {
			return
		}
		vm.onboarded = true
		for _, id := range ids {
			vm.followed[id] = struct{}{}
			vm.inProgress[id] = struct{}{}
		}
	}
}

// NewForYouViewModel constructs a ForYouViewModel. Nothing is fetched until
// Start is called.
func NewForYouViewModel(topics TopicRepository, newsRepo NewsRepository, opts ...ViewModelOption) *ForYouViewModel {
	vm := &ForYouViewModel{
		topics:     topics,
		news:       newsRepo,
		logger:     log.New(io.Discard),
		source:     stream.NewSource[foryou.FeedUIState](foryou.Loading{}),
		followed:   make(map[int]struct{}),
		inProgress: make(map[int]struct{}),
		saved:      make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// Subscribe returns a subscription to the feed state, starting with the
// latest snapshot. A new subscription replaces the previous one.
func (vm *ForYouViewModel) Subscribe() *stream.Subscription[foryou.FeedUIState] {
	return vm.source.Subscribe()
}

// State returns the latest published snapshot.
func (vm *ForYouViewModel) State() foryou.FeedUIState {
	return vm.source.Value()
}

// Start subscribes to the repositories. It must be called once.
func (vm *ForYouViewModel) Start(ctx context.Context) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.ctx, vm.cancel = context.WithCancel(ctx)
	topics := vm.topics.TopicsStream(vm.ctx)
	vm.wg.Go(func() {
		consume(vm.ctx, topics, func(list []news.Topic) {
			vm.mu.Lock()
			defer vm.mu.Unlock()
			vm.allTopics = list
			vm.topicsLoaded = true
			vm.logger.Debug("topics received", "count", len(list))
			vm.publishLocked()
		})
	})
	vm.refreshFeedLocked()
}

// Close cancels the repository subscriptions and closes the state source.
func (vm *ForYouViewModel) Close() {
	vm.mu.Lock()
	cancel := vm.cancel
	vm.closed = true
	vm.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	vm.wg.Wait()
	vm.source.Close()
}

// UpdateTopicSelection changes whether topicID is part of the topic
// selection in progress. It has no effect once topics have been saved.
func (vm *ForYouViewModel) UpdateTopicSelection(topicID int, checked bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.onboarded {
		vm.logger.Debug("ignoring topic selection after onboarding", "topic", topicID)
		return
	}
	if checked {
		vm.inProgress[topicID] = struct{}{}
	} else {
		delete(vm.inProgress, topicID)
	}
	vm.refreshFeedLocked()
	vm.publishLocked()
}

// SaveFollowedTopics confirms the topic selection in progress. An empty
// selection cannot be saved.
func (vm *ForYouViewModel) SaveFollowedTopics() {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.onboarded || len(vm.inProgress) == 0 {
		return
	}
	vm.followed = make(map[int]struct{}, len(vm.inProgress))
	for id := range vm.inProgress {
		vm.followed[id] = struct{}{}
	}
	vm.onboarded = true
	vm.logger.Info("followed topics saved", "topics", sortedIDs(vm.followed))
	vm.refreshFeedLocked()
	vm.publishLocked()
}

// UpdateNewsResourceSaved bookmarks or un-bookmarks a news resource.
func (vm *ForYouViewModel) UpdateNewsResourceSaved(resourceID int, checked bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if checked {
		vm.saved[resourceID] = struct{}{}
	} else {
		delete(vm.saved, resourceID)
	}
	vm.publishLocked()
}

// refreshFeedLocked points the feed at the news stream matching the
// current interests. The latest filter wins; older streams are cancelled
// and their values ignored.
func (vm *ForYouViewModel) refreshFeedLocked() {
	if vm.ctx == nil || vm.closed {
		return
	}

	interests := vm.inProgress
	if vm.onboarded {
		interests = vm.followed
	}
	ids := sortedIDs(interests)
	filter := filterKey(vm.onboarded, ids)
	if filter == vm.feedFilter {
		return
	}
	vm.feedFilter = filter

	if vm.cancelFeed != nil {
		vm.cancelFeed()
		vm.cancelFeed = nil
	}
	vm.feedGen++
	gen := vm.feedGen

	if !vm.onboarded && len(ids) == 0 {
		vm.feed = nil
		vm.feedLoaded = true
		return
	}

	ctx, cancel := context.WithCancel(vm.ctx)
	vm.cancelFeed = cancel

	var ch <-chan []news.NewsResource
	if len(ids) == 0 {
		ch = vm.news.NewsResourcesStream(ctx)
	} else {
		ch = vm.news.NewsResourcesStreamByTopics(ctx, ids)
	}
	vm.logger.Debug("news stream opened", "filter", filter)

	vm.wg.Go(func() {
		consume(ctx, ch, func(list []news.NewsResource) {
			vm.mu.Lock()
			defer vm.mu.Unlock()
			if gen != vm.feedGen {
				return
			}
			vm.feed = list
			vm.feedLoaded = true
			vm.logger.Debug("news received", "count", len(list), "filter", filter)
			vm.publishLocked()
		})
	})
}

func (vm *ForYouViewModel) publishLocked() {
	state, ok := vm.snapshotLocked()
	if !ok {
		return
	}
	vm.logger.Debug("state published", "state", fmt.Sprintf("%T", state))
	vm.source.Publish(state)
}

func (vm *ForYouViewModel) snapshotLocked() (foryou.FeedUIState, bool) {
	if !vm.feedLoaded {
		return nil, false
	}
	feed := make([]news.SaveableNewsResource, len(vm.feed))
	for i, r := range vm.feed {
		_, saved := vm.saved[r.ID]
		feed[i] = news.SaveableNewsResource{NewsResource: cloneResource(r), IsSaved: saved}
	}

	if vm.onboarded {
		return foryou.FeedWithoutTopicSelection{Feed: feed}, true
	}
	if !vm.topicsLoaded {
		return nil, false
	}
	topics := make([]news.FollowableTopic, len(vm.allTopics))
	for i, t := range vm.allTopics {
		_, followed := vm.inProgress[t.ID]
		topics[i] = news.FollowableTopic{Topic: t, IsFollowed: followed}
	}
	return foryou.FeedWithTopicSelection{Topics: topics, Feed: feed}, true
}

func consume[T any](ctx context.Context, ch <-chan T, fn func(T)) {
	for {
		select {
		case <-ctx.Done():
			return
		case v, ok := <-ch:
			if !ok {
				return
			}
			fn(v)
		}
	}
}

func cloneResource(r news.NewsResource) news.NewsResource {
	r.Topics = slices.Clone(r.Topics)
	r.Authors = slices.Clone(r.Authors)
	return r
}

func sortedIDs(set map[int]struct{}) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func filterKey(onboarded bool, ids []int) string {
	if len(ids) == 0 {
		if onboarded {
			return "all"
		}
		return "none"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
