package main

import "sync"

type Config struct {
	DefaultVariant        string  `json:"default_variant"`
	AiDifficulty          string  `json:"ai_difficulty"`
	AiMaxDepth            int     `json:"ai_max_depth"`
	AiTimeBudgetMs        int     `json:"ai_time_budget_ms"`
	AiTtSize              int     `json:"ai_tt_size"`
	AiTtBuckets           int     `json:"ai_tt_buckets"`
	AiLogSearchStats      bool    `json:"ai_log_search_stats"`
	AiEnableTtPersistence bool    `json:"ai_enable_tt_persistence"`
	AiTtPersistencePath   string  `json:"ai_tt_persistence_path"`
	Weights               Weights `json:"weights"`
}

// Weights are the evaluation terms, in man-equivalents scaled by 100
// (a plain man is worth Material=100).
type Weights struct {
	Material    float64 `json:"material"`
	KingValue   float64 `json:"king_value"`
	Advancement float64 `json:"advancement"`
	BackRow     float64 `json:"back_row"`
	Center      float64 `json:"center"`
	Mobility    float64 `json:"mobility"`
	Protection  float64 `json:"protection"`
	Tempo       float64 `json:"tempo"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		DefaultVariant: "american",

		AiDifficulty:   "hard",
		AiMaxDepth:     0, // 0: take the difficulty preset's depth
		AiTimeBudgetMs: 0, // 0: take the difficulty preset's budget

		// TT sizing; buckets of 4 gave the best hit rate under
		// iterative deepening.
		AiTtSize:    1 << 18,
		AiTtBuckets: 4,

		AiLogSearchStats:      false, // turn ON temporarily to tune; disable later
		AiEnableTtPersistence: false,
		AiTtPersistencePath:   "tt_snapshot.gob",

		Weights: DefaultWeights(),
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
