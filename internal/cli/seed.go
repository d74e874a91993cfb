package cli

import (
	"context"
	"fmt"

	"github.com/NikitaCOEUR/prefixgender/internal/fixture"
)

// SeedParams contains parameters for the Seed command
type SeedParams struct {
	GlobalParams
	File string
}

// Seed loads a fixture file into the customer store
func Seed(ctx context.Context, params SeedParams) error {
	if params.File == "" {
		return fmt.Errorf("fixture file required")
	}

	f, err := fixture.ReadFile(params.File)
	if err != nil {
		return err
	}

	c, err := initializeComponents(params.GlobalParams)
	if err != nil {
		return err
	}
	defer c.close()

	summary, err := fixture.Load(ctx, c.store, f)
	if err != nil {
		return fmt.Errorf("failed to seed %s: %w", c.store.Path(), err)
	}

	c.log.Info().Int("attributes", summary.Attributes).Int("customers", summary.Customers).
		Str("database", c.store.Path()).Msg("fixture loaded")
	_, _ = fmt.Fprintf(params.out(), "✓ Seeded %d attributes and %d customers into %s\n",
		summary.Attributes, summary.Customers, c.store.Path())
	return nil
}
