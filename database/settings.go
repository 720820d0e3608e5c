package database

import (
	"encoding/json"
	"log"
	"time"

	"invoiceflow-backend/models"
)

// settingsKey is the substrate slot for the API configuration. It is
// independent of the invoice collection.
const settingsKey = "invoiceflow-api-config"

// SettingsStore persists the payment-provider API configuration. It is
// written only on explicit save and removed only on explicit clear.
type SettingsStore struct {
	kv        KV
	testDelay time.Duration
}

func NewSettingsStore(kv KV, testDelay time.Duration) *SettingsStore {
	return &SettingsStore{kv: kv, testDelay: testDelay}
}

// Load reads the saved configuration. An absent or unreadable slot
// yields the zero configuration.
func (s *SettingsStore) Load() (models.APIConfig, error) {
	raw, ok, err := s.kv.Get(settingsKey)
	if err != nil || !ok {
		return models.APIConfig{}, err
	}
	var cfg models.APIConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		log.Printf("settings store: discarding unreadable payload: %v", err)
		return models.APIConfig{}, nil
	}
	return cfg, nil
}

func (s *SettingsStore) Save(cfg models.APIConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return s.kv.Set(settingsKey, string(raw))
}

func (s *SettingsStore) Clear() error {
	return s.kv.Delete(settingsKey)
}

// TestConnection simulates a provider round trip. A key shorter than 20
// characters is considered invalid. The result is not persisted; callers
// save explicitly.
func (s *SettingsStore) TestConnection(cfg models.APIConfig) bool {
	time.Sleep(s.testDelay)
	return len(cfg.APIKey) >= 20
}
