package main

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrGameNotFound = errors.New("game not found")

type GameSession struct {
	ID         string
	Controller *GameController
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// GameManager keeps every live game session keyed by a generated id.
type GameManager struct {
	mu    sync.RWMutex
	games map[string]*GameSession
}

func NewGameManager() *GameManager {
	return &GameManager{games: make(map[string]*GameSession)}
}

func (m *GameManager) NewGame(settings GameSettings) (*GameSession, error) {
	controller, err := NewGameController(settings)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.NewString()
	session := &GameSession{
		ID:         id,
		Controller: controller,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	m.games[id] = session
	return session, nil
}

func (m *GameManager) Get(id string) (*GameSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return session, nil
}

func (m *GameManager) Touch(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if session, ok := m.games[id]; ok {
		session.UpdatedAt = time.Now()
	}
}

func (m *GameManager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.games[id]
	if !ok {
		return ErrGameNotFound
	}
	session.Controller.Stop()
	delete(m.games, id)
	return nil
}

func (m *GameManager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.games))
	for id := range m.games {
		ids = append(ids, id)
	}
	return ids
}

// TickAll advances every running game one step and reports the ids that
// changed, for the websocket push loop.
func (m *GameManager) TickAll() []string {
	m.mu.RLock()
	sessions := make([]*GameSession, 0, len(m.games))
	for _, session := range m.games {
		sessions = append(sessions, session)
	}
	m.mu.RUnlock()

	var changed []string
	for _, session := range sessions {
		if session.Controller.Tick() {
			changed = append(changed, session.ID)
		}
	}
	if len(changed) > 0 {
		m.mu.Lock()
		now := time.Now()
		for _, id := range changed {
			if session, ok := m.games[id]; ok {
				session.UpdatedAt = now
			}
		}
		m.mu.Unlock()
	}
	return changed
}
