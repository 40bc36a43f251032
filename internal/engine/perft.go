package engine

import (
	"context"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree to the given depth,
// counting each promotion piece as a separate move.
func Perft(pos chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := ExpandPromotions(LegalMoves(pos))
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(applyMove(pos, m), depth-1)
	}
	return nodes
}

// Divide returns the perft count below each legal root move, keyed by UCI text.
func Divide(pos chess.Position, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	for _, m := range ExpandPromotions(LegalMoves(pos)) {
		out[m.UCI()] = Perft(applyMove(pos, m), depth-1)
	}
	return out
}

// ParallelDivide is Divide with the root moves counted on a pool of workers.
// Once ctx is done no further root move is started and ctx's error is
// returned in place of the partial counts.
func ParallelDivide(ctx context.Context, pos chess.Position, depth, workers int) (map[string]uint64, error) {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	moves := ExpandPromotions(LegalMoves(pos))

	pool := worker.NewPool(func(item worker.WorkItem) worker.Result {
		return worker.Result{
			Index: item.Index,
			Move:  item.Move,
			Nodes: Perft(applyMove(item.Position, item.Move), item.Depth-1),
		}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)))
	release := context.AfterFunc(ctx, pool.Stop)
	defer release()
	pool.Start()

	go func() {
		for i, m := range moves {
			pool.Submit(worker.WorkItem{Position: pos, Move: m, Depth: depth, Index: i})
		}
		pool.Close()
	}()

	for r := range pool.Results() {
		out[r.Move.UCI()] = r.Nodes
	}
	if pool.IsStopped() {
		return nil, ctx.Err()
	}
	return out, nil
}
