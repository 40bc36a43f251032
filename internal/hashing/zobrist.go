// Package hashing provides Zobrist position keys and the repetition table
// used for threefold repetition detection.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

const (
	pieceKinds  = 12
	castleMasks = 16
	// epNone is the en passant slot used when no target square is set.
	epNone = 8
)

// zobristSeed fixes the key tables so hashes are stable across runs.
const zobristSeed = 20260205

var (
	zobristPiece     [pieceKinds][64]uint64
	zobristSide      uint64 // XORed when White is to move
	zobristCastle    [castleMasks]uint64
	zobristEnPassant [epNone + 1]uint64
)

func init() {
	initZobrist()
}

func initZobrist() {
	rnd := rand.New(rand.NewSource(zobristSeed))

	for p := 0; p < pieceKinds; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	zobristSide = rnd.Uint64()
	for cr := 0; cr < castleMasks; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f <= epNone; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
}

// pieceIndex maps a coloured piece to 0-11: pawn through king, white then
// black within each type.
func pieceIndex(colouredPiece chess.Piece) int {
	idx := (int(chess.ExtractPiece(colouredPiece)) - 1) * 2
	if chess.ExtractColour(colouredPiece) == chess.Black {
		idx++
	}
	return idx
}

// Hash computes the Zobrist key of a position. Piece placement, side to
// move, castling rights and the en passant target all contribute; the
// halfmove clock and move number do not.
func Hash(pos chess.Position) uint64 {
	var key uint64

	for sq, p := range pos.Board {
		if p != chess.Empty {
			key ^= zobristPiece[pieceIndex(p)][sq]
		}
	}

	if pos.ToMove == chess.White {
		key ^= zobristSide
	}

	key ^= zobristCastle[pos.Castling.Mask()]

	if pos.EnPassant.Valid() {
		key ^= zobristEnPassant[pos.EnPassant.File()]
	} else {
		key ^= zobristEnPassant[epNone]
	}

	return key
}
