package cmd

import (
	"fmt"

	"github.com/abhisek/odootrail/internal/app"
	"github.com/abhisek/odootrail/internal/progress"
	"github.com/abhisek/odootrail/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe course progress",
	Long:  "Deletes the saved progress record (completed lessons, XP, streak, badges). Event history is kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			fmt.Println("This deletes all course progress. Re-run with --yes to confirm.")
			return nil
		}

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
		if err := prog.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}

		fmt.Println("Progress wiped. ¡Buena suerte en tu nuevo intento!")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the wipe without prompting")
}
