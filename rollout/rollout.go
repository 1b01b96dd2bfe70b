// Package rollout runs uniform-random playouts against a Session,
// sequentially (RunOne) or as a concurrent batch (RunBatch). Batch
// parallelism is built on golang.org/x/sync/errgroup, following the
// teacher pack's fastview client.Sync wiring of one errgroup per batch
// rather than a raw sync.WaitGroup, so a single rollout's error aborts
// the batch instead of being silently dropped.
package rollout

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/signalnine/lorcana-engine/state"
	"github.com/signalnine/lorcana-engine/store"
	"github.com/signalnine/lorcana-engine/tree"
)

// Result is one rollout's outcome.
type Result struct {
	Path       string
	Terminated bool
	Winner     string
}

// RunOne drives sess to completion (or maxActions exhaustion) with
// uniform random actions seeded by rngSeed.
func RunOne(sess *tree.Session, rngSeed int64, maxActions int, preferNonPass bool) (Result, error) {
	rng := rand.New(rand.NewSource(rngSeed))
	path, terminated, err := sess.PlayUntilGameOver(rng, maxActions, preferNonPass)
	if err != nil {
		return Result{}, err
	}
	winner := ""
	if terminated {
		winner, err = sess.GetWinner()
		if err != nil {
			return Result{}, err
		}
	}
	return Result{Path: path, Terminated: terminated, Winner: winner}, nil
}

// BatchStats aggregates a RunBatch call's results.
type BatchStats struct {
	Total      int
	Terminated int
	P1Wins     int
	P2Wins     int
}

// NewSessionFunc builds a fresh Session for one rollout (each goroutine
// needs its own Session/cursor so concurrent rollouts don't share a
// mutable `current` path).
type NewSessionFunc func() (*tree.Session, error)

// RunBatch launches n rollouts concurrently via errgroup, each against
// its own Session built by newSession, seeded by baseSeed+i for
// reproducibility. It returns once every rollout has finished or the
// first error aborts the group.
func RunBatch(ctx context.Context, n int, newSession NewSessionFunc, baseSeed int64, maxActions int, preferNonPass bool) ([]Result, BatchStats, error) {
	results := make([]Result, n)
	group, _ := errgroup.WithContext(ctx)

	for i := 0; i < n; i++ {
		i := i
		group.Go(func() error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			r, err := RunOne(sess, baseSeed+int64(i), maxActions, preferNonPass)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, BatchStats{}, err
	}

	stats := BatchStats{Total: n}
	for _, r := range results {
		if r.Terminated {
			stats.Terminated++
			switch r.Winner {
			case state.P1:
				stats.P1Wins++
			case state.P2:
				stats.P2Wins++
			}
		}
	}
	return results, stats, nil
}

// RunBatchMemory is a convenience wrapper for the common case of
// independent in-memory sessions rooted at the same initial state. The
// CLI's play-random command does not use it: it runs its rollouts
// sequentially against one FileStore.
func RunBatchMemory(ctx context.Context, initial *state.State, rootKey string, n int, baseSeed int64, maxActions int, preferNonPass bool) ([]Result, BatchStats, error) {
	return RunBatch(ctx, n, func() (*tree.Session, error) {
		st := store.NewMemoryStore()
		return tree.New(st, initial.Clone(), rootKey)
	}, baseSeed, maxActions, preferNonPass)
}
