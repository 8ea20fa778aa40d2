package provider

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
)

//go:embed demo.json
var demoExport []byte

// Seed loads the demo catalog, students and selections if no activities exist.
// Idempotent: does nothing once the store has data.
func Seed(ctx context.Context, store *SQLStore) error {
	empty, err := store.Empty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	if _, err := Import(ctx, store, bytes.NewReader(demoExport)); err != nil {
		return fmt.Errorf("seeding demo data: %w", err)
	}
	store.logger.Info("demo data seeded")
	return nil
}
