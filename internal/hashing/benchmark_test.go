package hashing

import (
	"testing"
)

var benchFENPositions = map[string]string{
	"Initial":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
}

func BenchmarkHash(b *testing.B) {
	for name, fen := range benchFENPositions {
		b.Run(name, func(b *testing.B) {
			pos := mustPosition(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Hash(pos)
			}
		})
	}
}

func BenchmarkRepetitionTable_Increment(b *testing.B) {
	pos := mustPosition(b, benchFENPositions["Midgame"])
	r := NewRepetitionTable()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Increment(pos)
	}
}
