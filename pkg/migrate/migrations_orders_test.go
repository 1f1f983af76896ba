package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/honestpc/honestpc-backend/pkg/migrate"
)

func TestMigrationsDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}

func TestOrdersMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_orders.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no orders migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TABLE orders",
		"status TEXT NOT NULL DEFAULT 'pending'",
		"CREATE UNIQUE INDEX idx_orders_order_number ON orders (order_number)",
		"CREATE UNIQUE INDEX idx_orders_order_ref ON orders (order_ref)",
		"DROP TABLE orders",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}
