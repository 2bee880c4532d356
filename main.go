package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

func main() {
	var persistOnce sync.Once
	persistOnShutdown := func(reason string) {
		persistOnce.Do(func() {
			log.Printf("[backend] persisting caches on %s", reason)
			persistTTPersistence(GetConfig())
		})
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			log.Printf("[backend] panic recovered in main: %v", recovered)
			persistOnShutdown("panic")
		}
	}()

	manager := NewGameManager()
	loadTTPersistence(GetConfig())
	defer persistOnShutdown("exit")
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go hub.Run(ctx.Done())
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				changed := manager.TickAll()
				// Games advance either way; marshalling is for watchers.
				if !hub.HasClients() {
					continue
				}
				for _, id := range changed {
					session, err := manager.Get(id)
					if err != nil {
						continue
					}
					if entry, ok := session.Controller.LatestHistoryEntry(); ok {
						hub.broadcastMove <- taggedHistory{GameID: id, Entry: historyEntryToDTO(entry)}
					}
					hub.broadcastStatus <- sessionStatus(session)
				}
			}
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Post("/api/games", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings GameSettingsDTO `json:"settings"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		settings := settingsFromDTO(payload.Settings, DefaultGameSettings())
		session, err := manager.NewGame(settings)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		if err := session.Controller.StartGame(settings); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusCreated, sessionStatus(session))
	})

	r.Get("/api/games", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string][]string{"games": manager.IDs()})
	})

	r.Get("/api/games/{id}", func(w http.ResponseWriter, r *http.Request) {
		session, err := manager.Get(chi.URLParam(r, "id"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, sessionStatus(session))
	})

	r.Delete("/api/games/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := manager.Delete(chi.URLParam(r, "id")); err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
	})

	r.Post("/api/games/{id}/move", func(w http.ResponseWriter, r *http.Request) {
		session, err := manager.Get(chi.URLParam(r, "id"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		var move Move
		if err := json.NewDecoder(r.Body).Decode(&move); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		applied, errMsg := session.Controller.ApplyHumanMove(move)
		if !applied {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
			return
		}
		manager.Touch(session.ID)
		if entry, ok := session.Controller.LatestHistoryEntry(); ok {
			hub.broadcastMove <- taggedHistory{GameID: session.ID, Entry: historyEntryToDTO(entry)}
		}
		hub.broadcastStatus <- sessionStatus(session)
		writeJSON(w, http.StatusOK, sessionStatus(session))
	})

	r.Get("/api/games/{id}/moves", func(w http.ResponseWriter, r *http.Request) {
		session, err := manager.Get(chi.URLParam(r, "id"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		moves := session.Controller.ValidMoves()
		// Optional ?row=&col= narrows the listing to one origin square.
		if rawRow, rawCol := r.URL.Query().Get("row"), r.URL.Query().Get("col"); rawRow != "" && rawCol != "" {
			row, errRow := strconv.Atoi(rawRow)
			col, errCol := strconv.Atoi(rawCol)
			if errRow != nil || errCol != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "row and col must be integers"})
				return
			}
			from := Position{Row: row, Col: col}
			filtered := make([]Move, 0, len(moves))
			for _, move := range moves {
				if move.From.Equals(from) {
					filtered = append(filtered, move)
				}
			}
			moves = filtered
		}
		writeJSON(w, http.StatusOK, movesResponse{Moves: moves})
	})

	r.Get("/api/games/{id}/ai-move", func(w http.ResponseWriter, r *http.Request) {
		session, err := manager.Get(chi.URLParam(r, "id"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		state := session.Controller.State()
		rules := session.Controller.Rules()
		ai := NewAIPlayer()
		move, ok := ai.GetBestMove(rules, state.Board, state.ToMove)
		if !ok {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "no legal moves"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]Move{"move": move})
	})

	r.Get("/api/games/{id}/analyze", func(w http.ResponseWriter, r *http.Request) {
		session, err := manager.Get(chi.URLParam(r, "id"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit <= 0 {
			limit = 3
		}
		if limit > 20 {
			limit = 20
		}
		state := session.Controller.State()
		rules := session.Controller.Rules()
		ai := NewAIPlayer()
		score := ai.AnalyzePosition(rules, state.Board, state.ToMove)
		top := ai.GetTopMoves(rules, state.Board, state.ToMove, limit)
		dto := make([]moveScoreDTO, 0, len(top))
		for _, ms := range top {
			dto = append(dto, moveScoreDTO{Move: ms.Move, Score: ms.Score, Depth: ms.Depth})
		}
		writeJSON(w, http.StatusOK, analysisResponse{Score: score, TopMoves: dto})
	})

	r.Post("/api/analyze", func(w http.ResponseWriter, r *http.Request) {
		var payload analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		toMove, ok := colorFromString(payload.ToMove)
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "to_move must be red or black"})
			return
		}
		variant := payload.Variant
		if variant == "" {
			variant = GetConfig().DefaultVariant
		}
		rules, err := NewGameRules(variant)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		board, err := boardFromGrid(payload.Board)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		if board.Size() != rules.GetBoardSize() {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "board size does not match variant"})
			return
		}
		limit := payload.Limit
		if limit <= 0 {
			limit = 3
		}
		if limit > 20 {
			limit = 20
		}
		ai := NewAIPlayer()
		score := ai.AnalyzePosition(rules, board, toMove)
		top := ai.GetTopMoves(rules, board, toMove, limit)
		dto := make([]moveScoreDTO, 0, len(top))
		for _, ms := range top {
			dto = append(dto, moveScoreDTO{Move: ms.Move, Score: ms.Score, Depth: ms.Depth})
		}
		writeJSON(w, http.StatusOK, analysisResponse{Score: score, TopMoves: dto})
	})

	r.Get("/api/variants", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, variantListResponse{Variants: SharedVariantRegistry().VariantNames()})
	})

	r.Get("/api/variants/{name}", func(w http.ResponseWriter, r *http.Request) {
		data, err := SharedVariantRegistry().ExportVariant(chi.URLParam(r, "name"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	})

	r.Post("/api/variants", func(w http.ResponseWriter, r *http.Request) {
		var config VariantConfig
		if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		if err := SharedVariantRegistry().RegisterCustomVariant(config.Name, config); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"registered": config.Name})
	})

	r.Get("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, GetConfig())
	})

	r.Post("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		var config Config
		if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		configStore.Update(config)
		writeJSON(w, http.StatusOK, GetConfig())
	})

	r.Delete("/api/cache/variants", func(w http.ResponseWriter, r *http.Request) {
		SharedVariantRegistry().ClearCache()
		writeJSON(w, http.StatusOK, map[string]bool{"cleared": true})
	})

	r.Get("/api/cache/tt", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ttCacheStatus())
	})

	r.Delete("/api/cache/tt", func(w http.ResponseWriter, r *http.Request) {
		SharedSearchCache().Clear()
		writeJSON(w, http.StatusOK, map[string]bool{"cleared": true})
	})

	r.Delete("/api/cache/tt/entries/{hash}", func(w http.ResponseWriter, r *http.Request) {
		hash, err := parseTTKey(chi.URLParam(r, "hash"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid hash"})
			return
		}
		deleted := SharedSearchCache().DeleteByKey(hash)
		writeJSON(w, http.StatusOK, map[string]any{
			"deleted": deleted,
			"hash":    fmt.Sprintf("0x%016x", hash),
		})
	})

	r.Get("/ws/{id}", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, manager, chi.URLParam(r, "id"), w, r)
	})

	server := &http.Server{
		Addr:    ":8080",
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Println("backend listening on :8080")
	var runErr error
	select {
	case <-sigCtx.Done():
		log.Printf("[backend] shutdown signal received: %v", sigCtx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			runErr = err
			log.Printf("[backend] server error: %v", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[backend] graceful shutdown failed: %v", err)
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Printf("[backend] forced close failed: %v", closeErr)
		}
	}

	cancel()
	persistOnShutdown("shutdown")
	if runErr != nil {
		log.Printf("[backend] exiting after server error: %v", runErr)
	}
}

func serveWS(hub *Hub, manager *GameManager, gameID string, w http.ResponseWriter, r *http.Request) {
	session, err := manager.Get(gameID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{hub: hub, gameID: gameID, send: make(chan []byte, 16)}
	hub.Register(client)

	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(sessionStatus(session))})

	go func() {
		defer conn.Close()
		_ = client.writePump(conn)
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "request_status":
			if session, err := manager.Get(gameID); err == nil {
				client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(sessionStatus(session))})
			}
		case "move":
			var move Move
			if err := json.Unmarshal(msg.Payload, &move); err != nil {
				continue
			}
			if session, err := manager.Get(gameID); err == nil {
				session.Controller.SubmitHumanMove(move)
			}
		}
	}
}

func ttCacheStatus() ttCacheStatusResponse {
	tt := SharedSearchCache()
	count := tt.Count()
	capacity := tt.Capacity()
	usage := 0.0
	full := false
	if capacity > 0 {
		usage = float64(count) / float64(capacity)
		full = count >= capacity
	}
	return ttCacheStatusResponse{
		Count:    count,
		Capacity: capacity,
		Usage:    usage,
		Full:     full,
	}
}

func parseTTKey(raw string) (uint64, error) {
	if raw == "" {
		return 0, errors.New("empty")
	}
	return strconv.ParseUint(raw, 0, 64)
}
