package types

// Key is a 64-bit Zobrist hash identifying a position for transposition
// table lookups and repetition detection.
type Key uint64
