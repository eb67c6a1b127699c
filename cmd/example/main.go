// Command example connects a typed store and walks through every operation:
// insert, update, find, remove, list and clear.
//
// Connection settings come from MONGODB_* environment variables (a .env file in
// the working directory is loaded first) and can be overridden with flags.
package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/logistics-id/simplemongo"
	"github.com/logistics-id/simplemongo/ds/mongo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Exercise the typed MongoDB store",
		Long: `example connects to MongoDB and runs the insert, update, find and remove
cycle on a User record, then lists and clears the collection.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			dev, _ := cmd.Flags().GetBool("dev")
			simplemongo.Start(&simplemongo.Config{
				Name:    "simplemongo.example",
				Version: os.Getenv("APP_VERSION"),
				IsDev:   dev,
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, demo)
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("uri", "", "connection URI (overrides MONGODB_URI)")
	pf.String("database", "", "database name (overrides MONGODB_DATABASE)")
	pf.String("collection", "", "collection name (overrides MONGODB_COLLECTION)")
	pf.String("username", "", "username spliced into the URI (overrides MONGODB_AUTH_USERNAME)")
	pf.String("password", "", "password spliced into the URI (overrides MONGODB_AUTH_PASSWORD)")
	pf.Bool("dev", false, "console logging")

	cmd.AddCommand(newListCmd(), newClearCmd())

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every user in the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, s *mongo.Store[User, *User]) error {
				users, err := s.ListAll(ctx)
				if err != nil {
					return err
				}
				for _, u := range users {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", u.UID, u.Name)
				}
				return nil
			})
		},
	}
}

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every user in the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, s *mongo.Store[User, *User]) error {
				empty, err := s.Clear(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "cleared: %v\n", empty)
				return nil
			})
		},
	}
}

// options merges the environment with any flags that were set. A lone --username
// or --password only replaces that half of the credentials read from the
// environment. Validation happens in Connect once flags are applied.
func options(cmd *cobra.Command) (mongo.Options, error) {
	opts, err := mongo.ReadOptions(mongo.EnvPrefix)
	if err != nil {
		return mongo.Options{}, err
	}

	pf := cmd.Flags()
	if pf.Changed("uri") {
		opts.URI, _ = pf.GetString("uri")
	}
	if pf.Changed("database") {
		opts.DatabaseName, _ = pf.GetString("database")
	}
	if pf.Changed("collection") {
		opts.CollectionPath, _ = pf.GetString("collection")
	}

	if pf.Changed("username") || pf.Changed("password") {
		creds := mongo.Credentials{}
		if opts.Credentials != nil {
			creds = *opts.Credentials
		}
		if pf.Changed("username") {
			creds.Username, _ = pf.GetString("username")
		}
		if pf.Changed("password") {
			creds.Password, _ = pf.GetString("password")
		}
		opts.Credentials = &creds
	}

	return opts, nil
}

func withStore(cmd *cobra.Command, fn func(context.Context, *mongo.Store[User, *User]) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	opts, err := options(cmd)
	if err != nil {
		simplemongo.Logger.Error("MGO/CONF INVALID", zap.Error(err))
		return err
	}

	s, err := mongo.Connect[User](ctx, opts, simplemongo.Logger)
	if err != nil {
		return err
	}
	defer s.Disconnect(context.Background())

	return fn(ctx, s)
}

func demo(ctx context.Context, s *mongo.Store[User, *User]) error {
	logger := simplemongo.Logger

	inserted, err := s.InsertOne(ctx, s.New("paolo"))
	if err != nil {
		return err
	}
	if inserted == nil {
		return fmt.Errorf("inserted user was not found")
	}
	logger.Info("created", zap.Any("user", inserted))

	updated, err := s.UpdateOneByID(ctx, inserted.UID, s.New("giovanni"))
	if err != nil {
		return err
	}
	logger.Info("updated", zap.Any("user", updated))

	found, err := s.FindOneByID(ctx, inserted.UID)
	if err != nil {
		return err
	}
	logger.Info("found", zap.Any("user", found))

	removed, err := s.RemoveOneByID(ctx, inserted.UID)
	if err != nil {
		return err
	}
	logger.Info("removed", zap.Any("user", removed))

	again, err := s.FindOneByID(ctx, inserted.UID)
	if err != nil {
		return err
	}
	logger.Info("found again", zap.Any("user", again))

	users, err := s.ListAll(ctx)
	if err != nil {
		return err
	}
	logger.Info("listed", zap.Int("count", len(users)))

	empty, err := s.Clear(ctx)
	if err != nil {
		return err
	}
	logger.Info("cleared", zap.Bool("empty", empty))

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
