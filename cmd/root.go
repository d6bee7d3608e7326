package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calliglyph/calliglyph/cmd/tui/ui"
	"github.com/calliglyph/calliglyph/internal/app"
	"github.com/calliglyph/calliglyph/internal/config"
	"github.com/calliglyph/calliglyph/internal/db"
	"github.com/calliglyph/calliglyph/internal/history"
	"github.com/calliglyph/calliglyph/internal/user"
)

var rootCmd = &cobra.Command{
	Use:   "CalliGlyph [file]",
	Short: "CalliGlyph is a terminal text editor with local file history",
	Long:  "CalliGlyph is a terminal text editor. Every save records a snapshot in a local SQLite database so previous versions can be listed and restored.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var store app.HistoryStore
		var recents []history.RecentFile

		dbConn, err := db.InitDB()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: file history unavailable: %v\n", err)
		} else {
			repo := history.NewRepository(dbConn)
			defer func() { _ = repo.Close() }()
			store = repo
			recents, _ = repo.ListRecent(config.RecentFilesLimit)
		}

		a := app.New(store)
		a.AuthorName = user.ResolveName()

		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		if err := a.Load(path); err != nil {
			return err
		}
		if path != "" {
			recents = nil
		}

		_, err = ui.NewProgram(a, recents).Run()
		return err
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
