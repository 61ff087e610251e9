package player

import "math"

// ExperienceToNextLevel returns the XP threshold for leveling up from the
// given level: floor(level*50 + level^1.5 * 25). Strictly increasing, so
// the level-up drain loop always terminates.
func ExperienceToNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	l := float64(level)
	return int(math.Floor(l*50 + math.Pow(l, 1.5)*25))
}

// DrainLevelUps applies the level-up loop: while the accumulated
// experience reaches the current threshold, subtract it and advance one
// level. A single large XP award can span multiple level-ups. Returns the
// number of levels gained.
//
// This is also the self-heal path for state loaded from a partially
// applied past write where experience >= experienceToNextLevel.
func (s *State) DrainLevelUps() int {
	if s.Level < 1 {
		s.Level = 1
	}
	s.ExperienceToNextLevel = ExperienceToNextLevel(s.Level)

	gained := 0
	for s.Experience >= s.ExperienceToNextLevel {
		s.Experience -= s.ExperienceToNextLevel
		s.Level++
		s.ExperienceToNextLevel = ExperienceToNextLevel(s.Level)
		gained++
	}
	return gained
}
