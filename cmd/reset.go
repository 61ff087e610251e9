package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"guessr/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all player progression and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to erase progression without --yes")
		}

		path, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		db, err := store.Open(path)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.Delete(cmd.Context(), store.KeyPlayerState); err != nil {
			return err
		}
		if err := db.Delete(cmd.Context(), store.KeyAchievementState); err != nil {
			return err
		}
		fmt.Println("Player progression reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
