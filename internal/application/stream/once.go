package stream

import "context"

// Once returns a channel that delivers v, then stays open without further
// values until ctx is done, when it is closed.
func Once[T any](ctx context.Context, v T) <-chan T {
	ch := make(chan T, 1)
	ch <- v
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch
}
