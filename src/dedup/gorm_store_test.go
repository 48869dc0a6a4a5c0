package dedup

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// helper to create a new in memory gorm DB backed store
func newTestGormStore(t *testing.T) *GormStore {
	t.Helper()

	dsn := fmt.Sprintf("file:dedup_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open in memory db: %v", err)
	}

	store, err := NewGormStore(db)
	if err != nil {
		t.Fatalf("failed to build gorm store: %v", err)
	}
	return store
}

func TestGormStoreAdmit(t *testing.T) {
	store := newTestGormStore(t)
	ctx := context.Background()

	if err := store.Admit(ctx, "https://www.federalreserve.gov/monetarypolicy.htm", "web-monitor"); err != nil {
		t.Fatalf("first admit should succeed, got %v", err)
	}

	err := store.Admit(ctx, "https://www.federalreserve.gov/monetarypolicy.htm", "social")
	if !errors.Is(err, ErrAlreadySeen) {
		t.Fatalf("duplicate key should return ErrAlreadySeen regardless of channel, got %v", err)
	}

	if err := store.Admit(ctx, "114123456789", "social"); err != nil {
		t.Fatalf("distinct key should be admitted, got %v", err)
	}
}

func TestOpenStoreBackends(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "memory", config: Config{Backend: "memory"}},
		{name: "sqlite", config: Config{Backend: "sqlite", DSN: "file:openstore?mode=memory&cache=shared", GormLogLevel: 1}},
		{name: "unknown", config: Config{Backend: "cassandra"}, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			store, err := OpenStore(test.config)
			if test.wantErr {
				if err == nil {
					t.Fatalf("expected error for backend %q", test.config.Backend)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if store == nil {
				t.Fatal("expected a store")
			}
		})
	}
}
