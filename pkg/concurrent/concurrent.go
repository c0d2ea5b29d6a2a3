package concurrent

import (
	"context"

	"github.com/zeusync/spawnkit/pkg/sequence"
	"golang.org/x/sync/errgroup"
)

// Concurrent runs action for each element of the iterator in its own goroutine.
// It waits for all goroutines and returns the first error encountered.
func Concurrent[T any](i *sequence.Iterator[T], action func(T) error) error {
	errGroup := errgroup.Group{}
	for value := range i.Seq() {
		errGroup.Go(func() error {
			return action(value)
		})
	}
	return errGroup.Wait()
}

// MapErr applies mapFn to every element with at most workers goroutines in
// flight and returns the results in input order. The context passed to mapFn
// is cancelled as soon as one call fails. Workers <= 0 means no limit.
func MapErr[T any, R any](ctx context.Context, data []T, workers int, mapFn func(context.Context, T) (R, error)) ([]R, error) {
	results := make([]R, len(data))
	errGroup, groupCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		errGroup.SetLimit(workers)
	}

	for idx, value := range data {
		errGroup.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			result, err := mapFn(groupCtx, value)
			if err != nil {
				return err
			}
			results[idx] = result
			return nil
		})
	}

	if err := errGroup.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
