package config

// searchConfiguration toggles and tunes the search driver's heuristics.
// Every toggle defaults to the value the specification prescribes;
// flipping one off is meant for debugging/benchmarking individual
// techniques, not for normal play.
type searchConfiguration struct {
	// Transposition table
	UseTT  bool
	TTSize int // megabytes

	// Move ordering
	UsePVMoveFromTT bool
	UseKiller       bool
	UseCounterMove  bool
	UseHistory      bool
	UseSEE          bool

	// Quiescence
	UseQuiescence  bool
	UseDeltaPrune  bool

	// Iterative deepening
	MaxDepth           int
	UseAspirationWindow bool
	AspirationWindow    int // internal units, +/- around previous score

	// Pruning / reductions
	UseIID          bool
	IIDMinDepth     int
	UseRFP          bool
	RfpMaxDepth     int
	RfpMarginPerPly int
	UseNullMove     bool
	NmpMinDepth     int
	UseLMR          bool
	LmrMinDepth     int
	UseFutility     bool

	// Repetition
	UseRepetitionDraw bool
}

func init() {
	s := &Settings.Search
	s.UseTT = true
	s.TTSize = 64

	s.UsePVMoveFromTT = true
	s.UseKiller = true
	s.UseCounterMove = true
	s.UseHistory = true
	s.UseSEE = true

	s.UseQuiescence = true
	s.UseDeltaPrune = true

	s.MaxDepth = 30
	s.UseAspirationWindow = true
	s.AspirationWindow = 250

	s.UseIID = true
	s.IIDMinDepth = 4
	s.UseRFP = true
	s.RfpMaxDepth = 5
	s.RfpMarginPerPly = 150
	s.UseNullMove = true
	s.NmpMinDepth = 3
	s.UseLMR = true
	s.LmrMinDepth = 3
	s.UseFutility = true

	s.UseRepetitionDraw = true
}
