package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/odootrail/internal/app"
	"github.com/abhisek/odootrail/internal/llm"
	"github.com/abhisek/odootrail/internal/progress"
	"github.com/abhisek/odootrail/internal/store"
	"github.com/abhisek/odootrail/internal/tutor"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	prog := progress.New(st.ProgressRepo(), app.NewEventSink(st.EventRepo()))
	prog.Load(ctx)

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "OdooBot will answer with offline fallbacks.")
		provider = llm.NewMockProvider()
	}

	return app.Run(app.Options{
		Progress: prog,
		Tutor:    tutor.NewService(provider, tutor.DefaultConfig()),
	})
}
