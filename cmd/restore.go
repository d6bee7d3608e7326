package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calliglyph/calliglyph/internal/db"
	"github.com/calliglyph/calliglyph/internal/history"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <file> <version>",
	Short: "Restore a file to a saved snapshot",
	Long:  "Restore a file on disk to one of its saved snapshots. The restore itself is recorded as a new snapshot.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := history.NormalizePath(args[0])
		version, err := strconv.Atoi(strings.TrimPrefix(args[1], "v"))
		if err != nil {
			return fmt.Errorf("invalid version %q", args[1])
		}

		outPath, _ := cmd.Flags().GetString("output")
		yes, _ := cmd.Flags().GetBool("yes")
		if outPath == "" {
			outPath = path
		}

		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		r := history.NewRepository(dbConn)
		if outPath == path && !yes {
			if !confirm(fmt.Sprintf("overwrite %s with snapshot v%d?", path, version)) {
				fmt.Println("aborted")
				return nil
			}
		}

		lines, err := r.RestoreSnapshot(path, version)
		if err != nil {
			return err
		}
		// same byte layout the editor saves, so the restored file does
		// not read back as changed
		if err := os.WriteFile(outPath, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		fmt.Printf("restored %s to v%d\n", outPath, version)
		return nil
	},
}

// confirm prompts with msg and expects y/n on stdin. Anything but an
// explicit yes counts as no.
func confirm(msg string) bool {
	fmt.Printf("%s [y/N]: ", msg)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	resp := strings.TrimSpace(strings.ToLower(line))
	return resp == "y" || resp == "yes"
}

func init() {
	restoreCmd.Flags().StringP("output", "o", "", "Write the snapshot to this path instead of the original file")
	restoreCmd.Flags().BoolP("yes", "y", false, "Overwrite without prompting")
	rootCmd.AddCommand(restoreCmd)
}
