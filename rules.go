package main

// GameRules is the façade the server and AI talk to: one resolved variant
// config threaded through every engine call. The config is immutable for
// the lifetime of the instance.
type GameRules struct {
	config VariantConfig
}

// NewGameRules loads and resolves the named variant from the shared
// registry.
func NewGameRules(variant string) (*GameRules, error) {
	config, err := SharedVariantRegistry().LoadVariant(variant)
	if err != nil {
		return nil, err
	}
	return &GameRules{config: config}, nil
}

func NewGameRulesFromConfig(config VariantConfig) (*GameRules, error) {
	if issues := config.Validate(); len(issues) > 0 {
		return nil, &InvalidConfigError{Name: config.Name, Issues: issues}
	}
	return &GameRules{config: config.resolve()}, nil
}

func (r *GameRules) Config() VariantConfig {
	return r.config
}

// CreateInitialBoard places both sides' men on the dark squares of their
// configured starting rows.
func (r *GameRules) CreateInitialBoard() Board {
	board := NewBoard(r.config.Board.Size)
	for _, row := range r.config.Board.StartingRows.Red {
		fillStartingRow(&board, row, RedMan)
	}
	for _, row := range r.config.Board.StartingRows.Black {
		fillStartingRow(&board, row, BlackMan)
	}
	return board
}

func fillStartingRow(board *Board, row int, piece Piece) {
	for col := 0; col < board.Size(); col++ {
		if isDarkSquare(row, col) {
			board.Set(row, col, piece)
		}
	}
}

func (r *GameRules) FindValidMoves(board Board, color PieceColor) []Move {
	return findValidMoves(board, color, r.config)
}

func (r *GameRules) CaptureMoves(board Board, from Position) []Move {
	piece := board.AtPos(from)
	if piece == PieceNone {
		return nil
	}
	return getCaptureMoves(board, from, piece, r.config)
}

func (r *GameRules) MakeMove(board Board, move Move) Board {
	return makeMove(board, move, r.config)
}

func (r *GameRules) ValidateMove(board Board, move Move, color PieceColor) bool {
	return validateMove(board, move, color, r.config)
}

func (r *GameRules) CheckWinner(board Board, toMove PieceColor, drawState *DrawState) *GameOutcome {
	return checkWinner(board, toMove, r.config, drawState)
}

// CheckDrawCondition evaluates only the draw rules, skipping the win
// checks; callers that already know nobody won use this directly.
func (r *GameRules) CheckDrawCondition(board Board, toMove PieceColor, drawState DrawState) *GameOutcome {
	outcome := checkWinner(board, toMove, r.config, &drawState)
	if outcome != nil && outcome.Draw {
		return outcome
	}
	return nil
}

// Rule introspection getters, consumed by UI layers.

func (r *GameRules) CanCaptureBackward(king bool) bool {
	if king {
		return r.config.Movement.King.CanCaptureBackward || r.config.Capture.CaptureDirection.King == DirAll
	}
	return r.config.Movement.Regular.CanCaptureBackward || r.config.Capture.CaptureDirection.Regular == DirAll
}

func (r *GameRules) CanFlyAsKing() bool {
	return r.config.Movement.King.CanFly
}

func (r *GameRules) IsMandatoryCapture() bool {
	return r.config.Capture.Mandatory
}

func (r *GameRules) RequiresMaximumCapture() bool {
	return r.config.Capture.RequireMaximum
}

func (r *GameRules) RequiresKingPriority() bool {
	return r.config.Capture.KingPriority
}

func (r *GameRules) GetBoardSize() int {
	return r.config.Board.Size
}

// GetPieceCount is the per-side piece count of the initial position.
func (r *GameRules) GetPieceCount() int {
	return r.config.Board.PieceCount
}

func (r *GameRules) ShouldPromote(pos Position, piece Piece) bool {
	if piece == PieceNone || piece.IsKing() {
		return false
	}
	return pos.Row == r.config.promotionRow(piece.Color())
}
