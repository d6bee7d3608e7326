package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calliglyph/calliglyph/internal/db"
	"github.com/calliglyph/calliglyph/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history <file>",
	Short: "Show saved snapshots for a file",
	Long:  "Show the snapshot history for a file (versions, timestamps, author, operation)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := history.NormalizePath(args[0])
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		r := history.NewRepository(dbConn)
		snaps, err := r.ListSnapshots(path)
		if err != nil {
			return err
		}
		if len(snaps) == 0 {
			fmt.Printf("no history for %s\n", path)
			return nil
		}
		for _, s := range snaps {
			author := ""
			if s.AuthorName.Valid {
				author = s.AuthorName.String
			}
			fmt.Printf("v%d\t%s\t%s\t%s\t%d lines\n", s.Version, s.CreatedAt, s.Operation, author, len(s.Lines))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
