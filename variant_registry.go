package main

import (
	"encoding/json"
	"fmt"
	"sync"
)

// VariantRegistry resolves variant names to validated configs. Resolved
// configs are cached by name; cache entries are invalidated explicitly
// (re-registration, ClearCache), never by TTL.
type VariantRegistry struct {
	mu     sync.RWMutex
	custom map[string]VariantConfig
	cache  map[string]VariantConfig
}

func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{
		custom: make(map[string]VariantConfig),
		cache:  make(map[string]VariantConfig),
	}
}

var variantRegistry = NewVariantRegistry()

func SharedVariantRegistry() *VariantRegistry {
	return variantRegistry
}

// LoadVariant returns the resolved config for name. Custom registrations
// shadow built-ins of the same name.
func (r *VariantRegistry) LoadVariant(name string) (VariantConfig, error) {
	r.mu.RLock()
	cached, ok := r.cache[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.cache[name]; ok {
		return cached, nil
	}
	config, ok := r.custom[name]
	if !ok {
		config, ok = builtinVariants()[name]
	}
	if !ok {
		return VariantConfig{}, &UnknownVariantError{Name: name}
	}
	if issues := config.Validate(); len(issues) > 0 {
		return VariantConfig{}, &InvalidConfigError{Name: name, Issues: issues}
	}
	resolved := config.resolve()
	r.cache[name] = resolved
	return resolved, nil
}

// RegisterCustomVariant validates before storing; a failed validation
// leaves prior state untouched. Re-registering under an existing name
// drops that name's cache entry.
func (r *VariantRegistry) RegisterCustomVariant(name string, config VariantConfig) error {
	config.Name = name
	if issues := config.Validate(); len(issues) > 0 {
		return &InvalidConfigError{Name: name, Issues: issues}
	}
	r.mu.Lock()
	r.custom[name] = config
	delete(r.cache, name)
	r.mu.Unlock()
	return nil
}

// ExportVariant serializes the resolved config for name.
func (r *VariantRegistry) ExportVariant(name string) ([]byte, error) {
	config, err := r.LoadVariant(name)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(config, "", "  ")
}

// ImportVariant parses and registers a serialized config under name; the
// payload is re-validated on the way in.
func (r *VariantRegistry) ImportVariant(name string, data []byte) error {
	var config VariantConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("import variant %q: %w", name, err)
	}
	return r.RegisterCustomVariant(name, config)
}

func (r *VariantRegistry) ClearCache() {
	r.mu.Lock()
	r.cache = make(map[string]VariantConfig)
	r.mu.Unlock()
}

// VariantNames lists built-ins plus custom registrations, custom names
// appended after the fixed built-in order.
func (r *VariantRegistry) VariantNames() []string {
	names := []string{"american", "brazilian", "international", "canadian"}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		seen[name] = struct{}{}
	}
	r.mu.RLock()
	for name := range r.custom {
		if _, ok := seen[name]; !ok {
			names = append(names, name)
		}
	}
	r.mu.RUnlock()
	return names
}
