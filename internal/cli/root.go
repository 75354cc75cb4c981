package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/restaurants-backend/internal/app"
	"github.com/yungbote/restaurants-backend/internal/platform/shutdown"
)

// appFactory is replaced in tests.
var appFactory = app.New

func Execute() error {
	ctx, stop := shutdown.NotifyContext(context.Background())
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "restaurants",
		Short:        "Restaurant catalog API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), serveOptions{seed: true})
		},
	}
	cmd.AddCommand(serveCmd(), migrateCmd(), seedCmd())
	return cmd
}

type serveOptions struct {
	seed       bool
	seedForced bool
}

func serveCmd() *cobra.Command {
	var opts serveOptions
	c := &cobra.Command{
		Use:   "serve",
		Short: "Migrate the store, seed sample data when empty and serve the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.seedForced = cmd.Flags().Changed("seed")
			return runServe(cmd.Context(), opts)
		},
	}
	c.Flags().BoolVar(&opts.seed, "seed", true, "seed sample restaurants into an empty store (overrides SEED_ON_START)")
	return c
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the store schema and indexes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := appFactory(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.Migrate(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrated")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample catalog (or --file) when the store is empty",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := appFactory(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			if file != "" {
				a.Cfg.SeedFile = file
			}
			if err := a.Migrate(cmd.Context()); err != nil {
				return err
			}
			n, err := a.Seed(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d restaurants\n", n)
			return nil
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "YAML catalog to seed instead of the built-in sample")
	return c
}

func runServe(ctx context.Context, opts serveOptions) error {
	a, err := appFactory(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Migrate(ctx); err != nil {
		return err
	}
	seedEnabled := a.Cfg.SeedOnStart
	if opts.seedForced {
		seedEnabled = opts.seed
	}
	if seedEnabled {
		// A failed seed leaves the API usable, so it is not fatal.
		if _, err := a.Seed(ctx); err != nil {
			a.Log.Warn("Seeding sample restaurants failed", "error", err)
		}
	}
	return a.Serve(ctx)
}
