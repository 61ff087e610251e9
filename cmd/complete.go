package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"guessr/internal/scoring"
	"guessr/internal/session"
)

// sessionFile is the finished-session payload the game loop hands over:
// the ordered answers plus the mode they were played in.
type sessionFile struct {
	Mode    session.Mode          `json:"mode"`
	Answers []session.AnswerEvent `json:"answers"`
}

var completeCmd = &cobra.Command{
	Use:   "complete <session.json>",
	Short: "Apply a finished session to the player's progression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read session file: %w", err)
		}

		var sf sessionFile
		if err := json.Unmarshal(raw, &sf); err != nil {
			return fmt.Errorf("parse session file: %w", err)
		}

		// Answers normally arrive pre-scored at submission time; score
		// any that aren't, using the captured time-remaining values.
		for i := range sf.Answers {
			a := &sf.Answers[i]
			if a.Score == 0 {
				a.Score = scoring.Score(a.UserAnswer, a.CorrectAnswer, a.TimeRemaining, a.TimeLimit, a.Difficulty)
			}
		}

		svc, db, err := openService(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		res, err := svc.Complete(cmd.Context(), sf.Mode, sf.Answers)
		if err != nil {
			return err
		}

		fmt.Printf("Session %s: %d/%d points\n", sf.Mode, res.Summary.FinalScore, res.Summary.MaxPossibleScore)
		fmt.Printf("Experience gained: %d", res.ExperienceGained)
		if res.LevelsGained > 0 {
			fmt.Printf("  (level up x%d!)", res.LevelsGained)
		}
		fmt.Println()
		if res.Summary.MaxStreak > 0 {
			fmt.Printf("Best streak: %d\n", res.Summary.MaxStreak)
		}
		for _, a := range res.NewlyUnlocked {
			fmt.Printf("Achievement unlocked: %s (%s)\n", a.Name, a.Description)
		}
		fmt.Printf("Overall score: %d\n", res.OverallScore)
		return nil
	},
}
