package skills

import (
	"math"

	"guessr/internal/player"
	"guessr/internal/session"
)

// SmoothingWeight is the fixed EMA weight: each session pulls a rating
// 10% of the way toward that session's sample.
const SmoothingWeight = 0.1

// Samples holds the per-session observations for the five skill axes,
// each on the same 0-100 scale as the ratings they feed.
type Samples struct {
	Accuracy    float64
	Speed       float64
	Consistency float64
	Knowledge   float64
	Strategy    float64

	// HasConsistency is false for single-answer sessions, where variance
	// is undefined and the prior consistency rating is kept as-is.
	HasConsistency bool
}

// SampleFrom derives the skill samples for one session.
func SampleFrom(sum *session.Summary) Samples {
	s := Samples{}

	s.Accuracy = math.Min(100, sum.PerformanceRatio()*100)
	s.Speed = math.Min(100, sum.AverageTimeRemaining()*10)

	if len(sum.Answers) > 1 {
		s.Consistency = math.Max(0, 100-math.Sqrt(scoreVariance(sum.Answers)))
		s.HasConsistency = true
	}

	distinct := len(sum.Categories)
	if distinct < 1 {
		distinct = 1
	}
	s.Knowledge = math.Min(100, s.Accuracy*(1+0.1*float64(distinct-1)))

	// streakBonus is not tracked upstream and defaults to zero.
	s.Strategy = math.Min(100, float64(sum.MaxStreak)*20)

	return s
}

// Update returns the ratings after smoothing in one session's samples.
// The prior ratings are read once; callers merge the result into the
// player state alongside the experience delta.
func Update(prior player.SkillRatings, sum *session.Summary) player.SkillRatings {
	s := SampleFrom(sum)

	next := player.SkillRatings{
		Accuracy:  smooth(prior.Accuracy, s.Accuracy),
		Speed:     smooth(prior.Speed, s.Speed),
		Knowledge: smooth(prior.Knowledge, s.Knowledge),
		Strategy:  smooth(prior.Strategy, s.Strategy),
	}
	if s.HasConsistency {
		next.Consistency = smooth(prior.Consistency, s.Consistency)
	} else {
		next.Consistency = prior.Consistency
	}
	return next
}

func smooth(old, sample float64) float64 {
	v := math.Round(old*(1-SmoothingWeight) + sample*SmoothingWeight)
	return math.Min(100, math.Max(0, v))
}

// scoreVariance is the population variance of the per-question scores.
func scoreVariance(answers []session.AnswerEvent) float64 {
	n := float64(len(answers))
	var mean float64
	for _, a := range answers {
		mean += float64(a.Score)
	}
	mean /= n

	var variance float64
	for _, a := range answers {
		d := float64(a.Score) - mean
		variance += d * d
	}
	return variance / n
}
