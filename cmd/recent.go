package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calliglyph/calliglyph/internal/config"
	"github.com/calliglyph/calliglyph/internal/db"
	"github.com/calliglyph/calliglyph/internal/history"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently edited files",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, args []string) error {
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		r := history.NewRepository(dbConn)
		files, err := r.ListRecent(config.RecentFilesLimit)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Println("no recent files")
			return nil
		}
		for _, f := range files {
			fmt.Printf("%s\t%s\n", f.OpenedAt, f.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recentCmd)
}
