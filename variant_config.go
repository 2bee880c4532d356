package main

import (
	"fmt"
	"strings"
)

const (
	MinBoardSize = 6
	MaxBoardSize = 12
)

// Direction values accepted for regular-piece movement.
const (
	DirForward  = "forward"
	DirBackward = "backward"
	DirAll      = "all"
)

type StartingRows struct {
	Red   []int `json:"red"`
	Black []int `json:"black"`
}

type BoardConfig struct {
	Size         int          `json:"size"`
	PieceCount   int          `json:"piece_count,omitempty"`
	StartingRows StartingRows `json:"starting_rows"`
}

type RegularMovement struct {
	Direction          string `json:"direction"`
	CanMoveBackward    bool   `json:"can_move_backward"`
	CanCaptureBackward bool   `json:"can_capture_backward"`
}

type KingMovement struct {
	CanFly             bool `json:"can_fly"`
	CanCaptureBackward bool `json:"can_capture_backward"`
}

type MovementConfig struct {
	Regular RegularMovement `json:"regular"`
	King    KingMovement    `json:"king"`
}

type CaptureDirections struct {
	Regular string `json:"regular"`
	King    string `json:"king"`
}

type CapturePromotion struct {
	DuringCapture     bool `json:"during_capture"`
	StopsCaptureChain bool `json:"stops_capture_chain"`
}

type CaptureConfig struct {
	Mandatory        bool              `json:"mandatory"`
	RequireMaximum   bool              `json:"require_maximum"`
	KingPriority     bool              `json:"king_priority"`
	ChainCaptures    bool              `json:"chain_captures"`
	CaptureDirection CaptureDirections `json:"capture_direction"`
	Promotion        CapturePromotion  `json:"promotion"`
}

type PromotionRows struct {
	Red   *int `json:"red,omitempty"`
	Black *int `json:"black,omitempty"`
}

type PromotionConfig struct {
	CustomRows PromotionRows `json:"custom_rows"`
}

type DrawsConfig struct {
	FortyMoveRule        bool `json:"forty_move_rule"`
	TwentyFiveMoveRule   bool `json:"twenty_five_move_rule"`
	RepetitionLimit      int  `json:"repetition_limit"`
	InsufficientMaterial bool `json:"insufficient_material"`
	StaleMate            bool `json:"stale_mate"`
}

type TimeControl struct {
	InitialMs   int `json:"initial_ms"`
	IncrementMs int `json:"increment_ms"`
}

// TournamentConfig is carried for API consumers (touch-move enforcement,
// notation, clocks); the move generator never reads it.
type TournamentConfig struct {
	TouchMove        bool         `json:"touch_move"`
	NotationRequired bool         `json:"notation_required"`
	TimeControl      *TimeControl `json:"time_control,omitempty"`
}

type VariantConfig struct {
	Name        string            `json:"name"`
	DisplayName string            `json:"display_name,omitempty"`
	Board       BoardConfig       `json:"board"`
	Movement    MovementConfig    `json:"movement"`
	Capture     CaptureConfig     `json:"capture"`
	Promotion   PromotionConfig   `json:"promotion"`
	Draws       DrawsConfig       `json:"draws"`
	Tournament  *TournamentConfig `json:"tournament,omitempty"`
}

// UnknownVariantError is returned when a variant is neither built in nor
// registered.
type UnknownVariantError struct {
	Name string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown variant %q", e.Name)
}

// InvalidConfigError carries one message per offending field path.
type InvalidConfigError struct {
	Name   string
	Issues []string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid variant config %q: %s", e.Name, strings.Join(e.Issues, "; "))
}

func validDirection(value string) bool {
	switch value {
	case DirForward, DirBackward, DirAll:
		return true
	}
	return false
}

func validCaptureDirection(value string) bool {
	return value == DirForward || value == DirAll
}

// Validate returns one message per broken field; an empty slice means the
// config is structurally sound.
func (c VariantConfig) Validate() []string {
	var issues []string
	if c.Name == "" {
		issues = append(issues, "name: must not be empty")
	}
	size := c.Board.Size
	if size < MinBoardSize || size > MaxBoardSize {
		issues = append(issues, fmt.Sprintf("board.size: %d out of range [%d,%d]", size, MinBoardSize, MaxBoardSize))
	}
	if c.Board.PieceCount < 0 {
		issues = append(issues, fmt.Sprintf("board.piece_count: %d must be a positive integer", c.Board.PieceCount))
	}
	issues = append(issues, validateRows("board.starting_rows.red", c.Board.StartingRows.Red, size)...)
	issues = append(issues, validateRows("board.starting_rows.black", c.Board.StartingRows.Black, size)...)
	if overlap := rowOverlap(c.Board.StartingRows.Red, c.Board.StartingRows.Black); len(overlap) > 0 {
		issues = append(issues, fmt.Sprintf("board.starting_rows: red and black share rows %v", overlap))
	}
	if !validDirection(c.Movement.Regular.Direction) {
		issues = append(issues, fmt.Sprintf("movement.regular.direction: %q not one of forward|backward|all", c.Movement.Regular.Direction))
	}
	if c.Capture.CaptureDirection.Regular != "" && !validCaptureDirection(c.Capture.CaptureDirection.Regular) {
		issues = append(issues, fmt.Sprintf("capture.capture_direction.regular: %q not one of forward|all", c.Capture.CaptureDirection.Regular))
	}
	if c.Capture.CaptureDirection.King != "" && !validCaptureDirection(c.Capture.CaptureDirection.King) {
		issues = append(issues, fmt.Sprintf("capture.capture_direction.king: %q not one of forward|all", c.Capture.CaptureDirection.King))
	}
	if c.Draws.RepetitionLimit < 0 {
		issues = append(issues, fmt.Sprintf("draws.repetition_limit: %d must not be negative (0 takes the default)", c.Draws.RepetitionLimit))
	}
	if size >= MinBoardSize && size <= MaxBoardSize {
		if row := c.Promotion.CustomRows.Red; row != nil && (*row < 0 || *row >= size) {
			issues = append(issues, fmt.Sprintf("promotion.custom_rows.red: %d out of range [0,%d)", *row, size))
		}
		if row := c.Promotion.CustomRows.Black; row != nil && (*row < 0 || *row >= size) {
			issues = append(issues, fmt.Sprintf("promotion.custom_rows.black: %d out of range [0,%d)", *row, size))
		}
	}
	if c.Tournament != nil && c.Tournament.TimeControl != nil {
		if c.Tournament.TimeControl.InitialMs < 0 {
			issues = append(issues, "tournament.time_control.initial_ms: must not be negative")
		}
		if c.Tournament.TimeControl.IncrementMs < 0 {
			issues = append(issues, "tournament.time_control.increment_ms: must not be negative")
		}
	}
	return issues
}

func validateRows(path string, rows []int, size int) []string {
	var issues []string
	if len(rows) == 0 {
		issues = append(issues, path+": must not be empty")
		return issues
	}
	for i, row := range rows {
		if row < 0 {
			issues = append(issues, fmt.Sprintf("%s[%d]: %d must be a non-negative integer", path, i, row))
			continue
		}
		if size >= MinBoardSize && row >= size {
			issues = append(issues, fmt.Sprintf("%s[%d]: %d outside board of size %d", path, i, row, size))
		}
	}
	return issues
}

func rowOverlap(a, b []int) []int {
	seen := make(map[int]struct{}, len(a))
	for _, row := range a {
		seen[row] = struct{}{}
	}
	var overlap []int
	for _, row := range b {
		if _, ok := seen[row]; ok {
			overlap = append(overlap, row)
		}
	}
	return overlap
}

// resolve fills defaults. Returns a copy; the input is never mutated.
func (c VariantConfig) resolve() VariantConfig {
	resolved := c
	if resolved.Capture.CaptureDirection.Regular == "" {
		if resolved.Movement.Regular.CanCaptureBackward {
			resolved.Capture.CaptureDirection.Regular = DirAll
		} else {
			resolved.Capture.CaptureDirection.Regular = DirForward
		}
	}
	if resolved.Capture.CaptureDirection.King == "" {
		if resolved.Movement.King.CanCaptureBackward {
			resolved.Capture.CaptureDirection.King = DirAll
		} else {
			resolved.Capture.CaptureDirection.King = DirForward
		}
	}
	if resolved.Promotion.CustomRows.Red == nil {
		row := 0
		resolved.Promotion.CustomRows.Red = &row
	}
	if resolved.Promotion.CustomRows.Black == nil {
		row := resolved.Board.Size - 1
		resolved.Promotion.CustomRows.Black = &row
	}
	if resolved.Board.PieceCount == 0 {
		resolved.Board.PieceCount = len(resolved.Board.StartingRows.Red) * resolved.Board.Size / 2
	}
	if resolved.Draws.RepetitionLimit == 0 {
		resolved.Draws.RepetitionLimit = 3
	}
	return resolved
}

func (c VariantConfig) promotionRow(color PieceColor) int {
	if color == ColorRed {
		if c.Promotion.CustomRows.Red != nil {
			return *c.Promotion.CustomRows.Red
		}
		return 0
	}
	if c.Promotion.CustomRows.Black != nil {
		return *c.Promotion.CustomRows.Black
	}
	return c.Board.Size - 1
}
