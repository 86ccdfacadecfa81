package cmd

import (
	"fmt"

	"github.com/abhisek/odootrail/internal/app"
	"github.com/abhisek/odootrail/internal/badges"
	"github.com/abhisek/odootrail/internal/catalog"
	"github.com/abhisek/odootrail/internal/progress"
	"github.com/abhisek/odootrail/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show course progress and recent completions",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		cur := prog.Load(ctx)

		cat := catalog.Curriculum()
		fmt.Printf("XP total:      %d / %d\n", cur.TotalXP, cat.TotalXP())
		fmt.Printf("Lecciones:     %d / %d\n", len(cur.CompletedLessonIDs), len(cat.Lessons()))
		fmt.Printf("Racha:         %d días\n", cur.StreakDays)
		fmt.Printf("Insignias:     %d / %d\n", len(cur.UnlockedBadges), len(badges.All))
		for _, id := range cur.UnlockedBadges {
			if b, ok := badges.Find(id); ok {
				fmt.Printf("  %s %s — %s\n", b.Icon, b.Title, b.Description)
			}
		}

		events, err := st.EventRepo().QueryCompletions(ctx, store.QueryOpts{Limit: 10})
		if err != nil {
			return fmt.Errorf("query completions: %w", err)
		}
		if len(events) > 0 {
			fmt.Println("\nÚltimas lecciones completadas:")
			for _, e := range events {
				fmt.Printf("  %s  %-40s +%d XP (%s)\n",
					e.Timestamp.Format("2006-01-02 15:04"), e.LessonTitle, e.XPAwarded, e.Origin)
			}
		}
		return nil
	},
}
