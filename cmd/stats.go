package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"guessr/internal/session"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show player progression and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, db, err := openService(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		st, err := svc.PlayerState(cmd.Context())
		if err != nil {
			return err
		}
		ach, err := svc.AchievementState(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Level %d  (%d/%d XP)\n", st.Level, st.Experience, st.ExperienceToNextLevel)
		fmt.Printf("Overall score: %d\n", st.OverallScore)
		fmt.Printf("Games played: %d  avg %d  best %d  streak record %d\n",
			st.GamesPlayed, st.AverageScore, st.BestSingleGame, st.StreakRecord)

		fmt.Println("\nSkill ratings:")
		fmt.Printf("  accuracy %.0f  speed %.0f  consistency %.0f  knowledge %.0f  strategy %.0f\n",
			st.SkillRatings.Accuracy, st.SkillRatings.Speed, st.SkillRatings.Consistency,
			st.SkillRatings.Knowledge, st.SkillRatings.Strategy)

		if len(st.ModeMastery) > 0 {
			fmt.Println("\nMode mastery:")
			for _, mode := range session.Modes {
				mm, ok := st.ModeMastery[mode]
				if !ok {
					continue
				}
				fmt.Printf("  %-18s played %-4d avg %-5d best %d\n", mode, mm.Played, mm.AverageScore, mm.BestScore)
			}
		}

		if len(st.CategoryMastery) > 0 {
			fmt.Println("\nCategory mastery:")
			categories := make([]string, 0, len(st.CategoryMastery))
			for c := range st.CategoryMastery {
				categories = append(categories, c)
			}
			sort.Strings(categories)
			for _, c := range categories {
				cm := st.CategoryMastery[c]
				fmt.Printf("  %-18s answered %-4d avg %-5d best %d\n", c, cm.QuestionsAnswered, cm.AverageScore, cm.BestScore)
			}
		}

		if len(st.Milestones) > 0 {
			fmt.Println("\nMilestones:")
			names := make([]string, 0, len(st.Milestones))
			for name := range st.Milestones {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("  %-24s %s\n", name, st.Milestones[name].Format("2006-01-02"))
			}
		}

		unlocked := 0
		fmt.Println("\nAchievements:")
		for _, def := range svc.Catalog() {
			mark := " "
			if ach[def.ID].Unlocked {
				mark = "x"
				unlocked++
			}
			fmt.Printf("  [%s] %-20s %s\n", mark, def.Name, def.Description)
		}
		fmt.Printf("%d/%d unlocked\n", unlocked, len(svc.Catalog()))
		return nil
	},
}
