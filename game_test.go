package main

import (
	"errors"
	"testing"
	"time"
)

func humanSettings() GameSettings {
	return GameSettings{
		Variant:    "american",
		RedType:    PlayerHuman,
		BlackType:  PlayerHuman,
		RedStarts:  true,
		Difficulty: "easy",
	}
}

func TestControllerRejectsMoveBeforeStart(t *testing.T) {
	gc, err := NewGameController(humanSettings())
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	opening := Move{From: Position{Row: 5, Col: 2}, To: Position{Row: 4, Col: 3}}
	applied, reason := gc.ApplyHumanMove(opening)
	if applied || reason != "game not running" {
		t.Fatalf("applied=%v reason=%q before start", applied, reason)
	}
}

func TestHumanVsHumanMoveFlow(t *testing.T) {
	gc, err := NewGameController(humanSettings())
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	if err := gc.StartGame(humanSettings()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if gc.State().ToMove != ColorRed {
		t.Fatalf("red starts, ToMove = %v", gc.State().ToMove)
	}

	illegal := Move{From: Position{Row: 5, Col: 2}, To: Position{Row: 3, Col: 2}}
	if applied, reason := gc.ApplyHumanMove(illegal); applied || reason == "" {
		t.Fatalf("illegal move accepted (applied=%v reason=%q)", applied, reason)
	}

	opening := Move{From: Position{Row: 5, Col: 2}, To: Position{Row: 4, Col: 3}}
	if applied, reason := gc.ApplyHumanMove(opening); !applied {
		t.Fatalf("legal opening rejected: %s", reason)
	}
	state := gc.State()
	if state.ToMove != ColorBlack {
		t.Fatalf("turn did not pass to black")
	}
	if !state.HasLastMove || !state.LastMove.Equals(opening) {
		t.Fatalf("last move = %v", state.LastMove)
	}
	if gc.History().Size() != 1 {
		t.Fatalf("history size = %d, want 1", gc.History().Size())
	}
}

func TestGameEliminationFinish(t *testing.T) {
	gc, err := NewGameController(humanSettings())
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	if err := gc.StartGame(humanSettings()); err != nil {
		t.Fatalf("start: %v", err)
	}

	board := NewBoard(8)
	board.Set(5, 2, RedMan)
	board.Set(4, 3, BlackMan)
	gc.game.state.Board = board
	gc.game.state.ToMove = ColorRed

	capture := Move{
		From:     Position{Row: 5, Col: 2},
		To:       Position{Row: 3, Col: 4},
		Captures: []Position{{Row: 4, Col: 3}},
	}
	if applied, reason := gc.ApplyHumanMove(capture); !applied {
		t.Fatalf("capture rejected: %s", reason)
	}
	state := gc.State()
	if state.Status != StatusRedWon {
		t.Fatalf("status = %v, want red won", state.Status)
	}
	if state.EndReason != "elimination" {
		t.Fatalf("end reason = %q, want elimination", state.EndReason)
	}
	if gc.ValidMoves() != nil {
		t.Fatalf("finished game still offers moves")
	}
}

func TestGamePromotionRecordedInHistory(t *testing.T) {
	gc, err := NewGameController(humanSettings())
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	if err := gc.StartGame(humanSettings()); err != nil {
		t.Fatalf("start: %v", err)
	}

	board := NewBoard(8)
	board.Set(6, 1, BlackMan)
	board.Set(1, 2, RedMan)
	gc.game.state.Board = board
	gc.game.state.ToMove = ColorBlack

	promote := Move{From: Position{Row: 6, Col: 1}, To: Position{Row: 7, Col: 0}}
	if applied, reason := gc.ApplyHumanMove(promote); !applied {
		t.Fatalf("promotion move rejected: %s", reason)
	}
	if piece := gc.State().Board.At(7, 0); piece != BlackKing {
		t.Fatalf("piece at promotion square = %v, want black king", piece)
	}
	entry, ok := gc.LatestHistoryEntry()
	if !ok || !entry.Promoted {
		t.Fatalf("history entry = %+v, want Promoted", entry)
	}
	if gc.State().Status != StatusRunning {
		t.Fatalf("game ended unexpectedly: %v", gc.State().Status)
	}
}

func TestSubmitHumanMoveAppliedOnTick(t *testing.T) {
	gc, err := NewGameController(humanSettings())
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	if err := gc.StartGame(humanSettings()); err != nil {
		t.Fatalf("start: %v", err)
	}

	opening := Move{From: Position{Row: 5, Col: 2}, To: Position{Row: 4, Col: 3}}
	if !gc.SubmitHumanMove(opening) {
		t.Fatalf("submit rejected")
	}
	if !gc.Tick() {
		t.Fatalf("tick did not apply the pending move")
	}
	if gc.State().ToMove != ColorBlack {
		t.Fatalf("turn did not pass after tick")
	}
}

func TestAiVsAiProgresses(t *testing.T) {
	settings := humanSettings()
	settings.RedType = PlayerAI
	settings.BlackType = PlayerAI

	gc, err := NewGameController(settings)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	if err := gc.StartGame(settings); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer gc.Stop()

	deadline := time.Now().Add(3 * time.Second)
	for gc.History().Size() < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("AI vs AI game made no progress")
		}
		gc.Tick()
		time.Sleep(2 * time.Millisecond)
	}
}

func TestUpdateSettingsRejectsUnknownVariant(t *testing.T) {
	gc, err := NewGameController(humanSettings())
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	bad := humanSettings()
	bad.Variant = "turkish"
	if err := gc.UpdateSettings(bad, false); err == nil {
		t.Fatalf("unknown variant accepted")
	}
	if err := gc.UpdateSettings(bad, true); err == nil {
		t.Fatalf("unknown variant accepted on reset")
	}
}

func TestStartGameResetsHistory(t *testing.T) {
	gc, err := NewGameController(humanSettings())
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	if err := gc.StartGame(humanSettings()); err != nil {
		t.Fatalf("start: %v", err)
	}
	opening := Move{From: Position{Row: 5, Col: 2}, To: Position{Row: 4, Col: 3}}
	if applied, _ := gc.ApplyHumanMove(opening); !applied {
		t.Fatalf("opening rejected")
	}

	if err := gc.StartGame(humanSettings()); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if gc.History().Size() != 0 {
		t.Fatalf("history survived a restart: %d entries", gc.History().Size())
	}
	if gc.State().Status != StatusRunning {
		t.Fatalf("restarted game status = %v", gc.State().Status)
	}
}

func TestGameManagerLifecycle(t *testing.T) {
	manager := NewGameManager()
	session, err := manager.NewGame(humanSettings())
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	if session.ID == "" {
		t.Fatalf("session has no id")
	}

	got, err := manager.Get(session.ID)
	if err != nil || got != session {
		t.Fatalf("get = %v, %v", got, err)
	}
	found := false
	for _, id := range manager.IDs() {
		if id == session.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("session id missing from IDs()")
	}

	if err := manager.Delete(session.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := manager.Get(session.ID); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("get after delete = %v, want ErrGameNotFound", err)
	}
	if err := manager.Delete(session.ID); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("double delete = %v, want ErrGameNotFound", err)
	}
}

func TestTickAllReportsChangedSessions(t *testing.T) {
	manager := NewGameManager()
	session, err := manager.NewGame(humanSettings())
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	if err := session.Controller.StartGame(humanSettings()); err != nil {
		t.Fatalf("start: %v", err)
	}

	if changed := manager.TickAll(); len(changed) != 0 {
		t.Fatalf("idle tick reported changes: %v", changed)
	}
	opening := Move{From: Position{Row: 5, Col: 2}, To: Position{Row: 4, Col: 3}}
	if !session.Controller.SubmitHumanMove(opening) {
		t.Fatalf("submit rejected")
	}
	changed := manager.TickAll()
	if len(changed) != 1 || changed[0] != session.ID {
		t.Fatalf("changed = %v, want [%s]", changed, session.ID)
	}
}
