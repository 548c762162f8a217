package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nbhznb/learnify/internal/api"
	"github.com/nbhznb/learnify/internal/app"
	"github.com/nbhznb/learnify/internal/auth"
	"github.com/nbhznb/learnify/internal/quiz"
	"github.com/nbhznb/learnify/internal/screen"
	"github.com/nbhznb/learnify/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp wires the API client, local store and auth session together
// and starts the TUI. Shared by the bare `learnify` invocation and
// `learnify play`.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	svc, client, err := buildAuthService(cmd)
	if err != nil {
		return err
	}

	// Restore a saved session if one exists. Failure just means the
	// user starts signed out.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := svc.Revalidate(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Session restore failed:", err)
	}
	cancel()

	deps := &screen.Deps{
		Client:   client,
		Auth:     svc,
		Supplier: quiz.NewSupplier(client, nil),
		Results:  st.Results(),
		State:    &quiz.State{},
	}
	return app.Run(deps)
}

// buildAuthService constructs the auth service backed by the on-disk
// credentials file.
func buildAuthService(cmd *cobra.Command) (*auth.Service, *api.Client, error) {
	client := api.New(resolveAPIURL(cmd))

	credsPath, err := store.DefaultCredsPath()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve credentials path: %w", err)
	}

	svc := auth.NewService(client, &auth.Session{}, store.NewCredsFile(credsPath))
	return svc, client, nil
}
