package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot is one durable key-value entry. The interesting payloads (the
// invoice collection, the API config) are JSON, so the value column is
// jsonb on Postgres.
type Slot struct {
	Key       string         `json:"key" gorm:"primaryKey;size:128"`
	Value     datatypes.JSON `json:"value" gorm:"type:jsonb"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// GormKV implements KV on top of a relational database.
type GormKV struct {
	db *gorm.DB
}

func NewGormKV(db *gorm.DB) (*GormKV, error) {
	if err := db.AutoMigrate(&Slot{}); err != nil {
		return nil, err
	}
	return &GormKV{db: db}, nil
}

func (g *GormKV) Get(key string) (string, bool, error) {
	var slot Slot
	if err := g.db.First(&slot, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(slot.Value), true, nil
}

func (g *GormKV) Set(key, value string) error {
	slot := Slot{Key: key, Value: datatypes.JSON(value), UpdatedAt: time.Now()}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
}

func (g *GormKV) Delete(key string) error {
	return g.db.Delete(&Slot{}, "key = ?", key).Error
}

var (
	// Store and Settings are the app-wide store instances, wired in Init.
	// Tests construct their own instances with a MemoryKV instead.
	Store    *InvoiceStore
	Settings *SettingsStore
	// Keys is the raw substrate, used by the idempotency middleware.
	Keys KV
)

// Connect opens the Postgres-backed substrate from env configuration.
func Connect() (*GormKV, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=5432 sslmode=disable",
		envOr("DB_HOST", "db"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return NewGormKV(db)
}

// Init picks a substrate (Postgres when DB_USER is configured, files
// otherwise) and wires the app-wide stores against it.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	var kv KV
	if os.Getenv("DB_USER") != "" {
		gkv, err := Connect()
		if err != nil {
			log.Fatalf("could not connect to database: %v", err)
		}
		kv = gkv
	} else {
		kv = NewFileKV(envOr("DATA_DIR", "data"))
	}

	Keys = kv
	Store = NewInvoiceStore(kv, DefaultLatency(), SeedInvoices())
	Settings = NewSettingsStore(kv, 2*time.Second)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
