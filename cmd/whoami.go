package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calliglyph/calliglyph/internal/user"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Manage the stored author identity",
	Long:  "Manage the persisted author identity recorded with every file snapshot.",
}

var whoamiSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the stored author identity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		if name == "" {
			return fmt.Errorf("--name is required")
		}
		p := user.Profile{Name: name, Email: email}
		if err := user.SetProfile(p); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "stored author as: %s\n", p)
		return nil
	},
}

var whoamiClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the stored author identity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := user.ClearProfile(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "cleared stored author identity")
		return nil
	},
}

var whoamiShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored author identity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok, err := user.GetProfile()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !ok {
			fmt.Fprintln(out, "no stored author identity")
			return nil
		}
		fmt.Fprintln(out, p)
		return nil
	},
}

func init() {
	whoamiSetCmd.Flags().StringP("name", "n", "", "Author name (required)")
	whoamiSetCmd.Flags().StringP("email", "e", "", "Author email (optional)")
	whoamiCmd.AddCommand(whoamiSetCmd)
	whoamiCmd.AddCommand(whoamiClearCmd)
	whoamiCmd.AddCommand(whoamiShowCmd)
	rootCmd.AddCommand(whoamiCmd)
}
