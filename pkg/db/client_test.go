package db

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/communityexpress/laundry-client/pkg/config"
	"gorm.io/gorm"
)

func TestNewRequiresPath(t *testing.T) {
	if _, err := New(context.Background(), config.DBConfig{}, nil); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestClientRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	client, err := New(context.Background(), config.DBConfig{Path: path}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer client.Close()

	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}

	if err := client.WithTx(context.Background(), func(tx *gorm.DB) error {
		return tx.Exec("CREATE TABLE scratch (id INTEGER PRIMARY KEY)").Error
	}); err != nil {
		t.Fatalf("tx failed: %v", err)
	}

	if err := client.WithTx(context.Background(), func(tx *gorm.DB) error {
		if err := tx.Exec("INSERT INTO scratch (id) VALUES (1)").Error; err != nil {
			return err
		}
		return fmt.Errorf("force rollback")
	}); err == nil {
		t.Fatalf("expected error to propagate")
	}

	var count int64
	if err := client.DB().Raw("SELECT COUNT(*) FROM scratch").Scan(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("rollback did not discard the insert, count=%d", count)
	}
}
