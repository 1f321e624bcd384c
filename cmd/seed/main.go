package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"trainboard/internal/config"
	"trainboard/internal/db"
	"trainboard/internal/logger"
	"trainboard/internal/repository"
	"trainboard/internal/seed"
	"trainboard/internal/service"
)

const (
	emailFlag    = "email"
	passwordFlag = "password"
)

var adminFlags = map[string]cobraflags.Flag{
	emailFlag: &cobraflags.StringFlag{
		Name:  emailFlag,
		Value: "",
		Usage: "Email of the administrator to create or promote (required)",
	},
	passwordFlag: &cobraflags.StringFlag{
		Name:  passwordFlag,
		Value: "",
		Usage: "Password to set for the administrator (required, at least 6 characters)",
	},
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "seed",
		Short: "Prepare a trainboard database",
		Long: `Prepare a trainboard database.

Without a subcommand the schema is migrated and reference stations and trains
are loaded. Existing rows are never overwritten, so the command is safe to rerun.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd.Context(), func(ctx context.Context, log *slog.Logger, gormDB *gorm.DB) error {
				if err := db.Migrate(gormDB); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				return seedReference(ctx, log, gormDB)
			})
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd.Context(), func(_ context.Context, log *slog.Logger, gormDB *gorm.DB) error {
				if err := db.Migrate(gormDB); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				log.Info("database migrations completed")
				return nil
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "reference",
		Short: "Load reference stations and trains",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd.Context(), seedReference)
		},
	})

	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Create an administrator or promote an existing profile",
		RunE:  adminCommand,
	}
	cobraflags.RegisterMap(adminCmd, adminFlags)
	root.AddCommand(adminCmd)

	return root
}

func adminCommand(cmd *cobra.Command, _ []string) error {
	email := adminFlags[emailFlag].GetString()
	password := adminFlags[passwordFlag].GetString()
	if email == "" || password == "" {
		return fmt.Errorf("--%s and --%s are required", emailFlag, passwordFlag)
	}

	return withDB(cmd.Context(), func(ctx context.Context, log *slog.Logger, gormDB *gorm.DB) error {
		profiles := service.NewProfileService(repository.NewProfileRepository(gormDB))
		created, err := seed.Admin(ctx, profiles, email, password)
		if err != nil {
			return err
		}
		if created {
			log.Info("administrator created", slog.String("email", email))
		} else {
			log.Info("existing profile promoted to administrator", slog.String("email", email))
		}
		return nil
	})
}

func seedReference(ctx context.Context, log *slog.Logger, gormDB *gorm.DB) error {
	res, err := seed.Reference(ctx, gormDB)
	if err != nil {
		return err
	}
	log.Info("seed completed",
		slog.Int("created", res.Created),
		slog.Int("skipped", res.Skipped),
	)
	return nil
}

// withDB loads config, connects and hands the connection to fn.
func withDB(ctx context.Context, fn func(context.Context, *slog.Logger, *gorm.DB) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := config.Load()
	log := logger.New(cfg.Env)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseURL, db.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
	})
	if err != nil {
		log.Error("failed to connect to database", slog.Any("error", err))
		return err
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			log.Warn("failed to close database", slog.Any("error", err))
		}
	}()

	if err := fn(ctx, log, gormDB); err != nil {
		log.Error("seed failed", slog.Any("error", err))
		return err
	}
	return nil
}
