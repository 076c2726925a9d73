package main

import (
	"context"
	"database/sql"
	"log"
	"math/rand/v2"
	"os"
	"path"

	"github.com/eskrenkovic/sales-catalog-go/internal/config"
	"github.com/eskrenkovic/sales-catalog-go/internal/env"
	"github.com/eskrenkovic/sales-catalog-go/internal/modules/core"

	"github.com/eskrenkovic/migrate-go"
	"github.com/eskrenkovic/tql"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	SeedProductCountEnv = "SEED_PRODUCT_COUNT"
	SeedResetEnv        = "SEED_RESET"
)

func main() {
	if len(os.Args) > 1 {
		if err := godotenv.Load(path.Join(os.Args[1], "config.env")); err != nil {
			log.Fatal(err)
		}
	}

	logger, err := config.NewLogger(env.GetStringOrDefault(config.LogLevelEnv, "info"))
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(context.Background(), logger); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
}

func run(ctx context.Context, logger *zap.Logger) error {
	databaseURL, err := env.GetString(config.DatabaseUrlEnv)
	if err != nil {
		return err
	}

	count, err := env.GetIntOrDefault(SeedProductCountEnv, 10000)
	if err != nil {
		return err
	}

	reset, err := env.GetBoolOrDefault(SeedResetEnv, false)
	if err != nil {
		return err
	}

	tql.SetActiveDriver("postgres")

	db, err := core.OpenDB(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	migrationsPath := path.Join(env.GetStringOrDefault(config.RootPathEnv, "."), "db", "migrations")
	if err := migrate.Run(ctx, db, migrationsPath); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	products := newProducts(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), count)

	err = core.Tx(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		if reset {
			if _, err := tx.ExecContext(ctx, `TRUNCATE TABLE product RESTART IDENTITY;`); err != nil {
				return errors.Wrap(err, "failed to reset product table")
			}
			logger.Info("product table reset")
		}

		return insertProducts(ctx, tx, products)
	})
	if err != nil {
		return err
	}

	logger.Info("products seeded", zap.Int("count", len(products)))
	return nil
}

func insertProducts(ctx context.Context, tx *sql.Tx, products []productRow) error {
	const stmt = `
		INSERT INTO product (product_name, price)
		VALUES (:product_name, :price);`

	for _, p := range products {
		if _, err := tql.Exec(ctx, tx, stmt, p); err != nil {
			return errors.Wrapf(err, "failed to insert product %q", p.ProductName)
		}
	}

	return nil
}
