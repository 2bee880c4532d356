package main

func intPtr(v int) *int {
	return &v
}

// Built-in variants. These literals are the reference contract the engine
// is tested against; custom variants are registered at runtime.
func builtinVariants() map[string]VariantConfig {
	return map[string]VariantConfig{
		"american": {
			Name:        "american",
			DisplayName: "American Checkers",
			Board: BoardConfig{
				Size:         8,
				StartingRows: StartingRows{Black: []int{0, 1, 2}, Red: []int{5, 6, 7}},
			},
			Movement: MovementConfig{
				Regular: RegularMovement{Direction: DirForward},
				King:    KingMovement{CanFly: false, CanCaptureBackward: true},
			},
			Capture: CaptureConfig{
				Mandatory:        true,
				RequireMaximum:   false,
				KingPriority:     false,
				ChainCaptures:    true,
				CaptureDirection: CaptureDirections{Regular: DirForward, King: DirAll},
				Promotion:        CapturePromotion{DuringCapture: true, StopsCaptureChain: true},
			},
			Promotion: PromotionConfig{},
			Draws: DrawsConfig{
				FortyMoveRule:        true,
				TwentyFiveMoveRule:   false,
				RepetitionLimit:      3,
				InsufficientMaterial: true,
			},
		},
		"brazilian": {
			Name:        "brazilian",
			DisplayName: "Brazilian Draughts",
			Board: BoardConfig{
				Size:         8,
				StartingRows: StartingRows{Black: []int{0, 1, 2}, Red: []int{5, 6, 7}},
			},
			Movement: MovementConfig{
				Regular: RegularMovement{Direction: DirForward, CanCaptureBackward: true},
				King:    KingMovement{CanFly: true, CanCaptureBackward: true},
			},
			Capture: CaptureConfig{
				Mandatory:        true,
				RequireMaximum:   true,
				KingPriority:     false,
				ChainCaptures:    true,
				CaptureDirection: CaptureDirections{Regular: DirAll, King: DirAll},
				Promotion:        CapturePromotion{DuringCapture: false, StopsCaptureChain: false},
			},
			Promotion: PromotionConfig{},
			Draws: DrawsConfig{
				FortyMoveRule:        true,
				TwentyFiveMoveRule:   true,
				RepetitionLimit:      3,
				InsufficientMaterial: true,
			},
		},
		"international": {
			Name:        "international",
			DisplayName: "International Draughts",
			Board: BoardConfig{
				Size:         10,
				StartingRows: StartingRows{Black: []int{0, 1, 2, 3}, Red: []int{6, 7, 8, 9}},
			},
			Movement: MovementConfig{
				Regular: RegularMovement{Direction: DirForward, CanCaptureBackward: true},
				King:    KingMovement{CanFly: true, CanCaptureBackward: true},
			},
			Capture: CaptureConfig{
				Mandatory:        true,
				RequireMaximum:   true,
				KingPriority:     false,
				ChainCaptures:    true,
				CaptureDirection: CaptureDirections{Regular: DirAll, King: DirAll},
				Promotion:        CapturePromotion{DuringCapture: false, StopsCaptureChain: false},
			},
			Promotion: PromotionConfig{},
			Draws: DrawsConfig{
				FortyMoveRule:        true,
				TwentyFiveMoveRule:   true,
				RepetitionLimit:      3,
				InsufficientMaterial: true,
			},
		},
		"canadian": {
			Name:        "canadian",
			DisplayName: "Canadian Checkers",
			Board: BoardConfig{
				Size:         12,
				StartingRows: StartingRows{Black: []int{0, 1, 2, 3, 4}, Red: []int{7, 8, 9, 10, 11}},
			},
			Movement: MovementConfig{
				Regular: RegularMovement{Direction: DirForward, CanCaptureBackward: true},
				King:    KingMovement{CanFly: true, CanCaptureBackward: true},
			},
			Capture: CaptureConfig{
				Mandatory:        true,
				RequireMaximum:   true,
				KingPriority:     false,
				ChainCaptures:    true,
				CaptureDirection: CaptureDirections{Regular: DirAll, King: DirAll},
				Promotion:        CapturePromotion{DuringCapture: false, StopsCaptureChain: false},
			},
			Promotion: PromotionConfig{},
			Draws: DrawsConfig{
				FortyMoveRule:        true,
				TwentyFiveMoveRule:   true,
				RepetitionLimit:      3,
				InsufficientMaterial: true,
			},
		},
	}
}
