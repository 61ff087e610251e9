package player

import "testing"

func TestExperienceToNextLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 75},  // 50 + 25
		{2, 170}, // 100 + floor(2.828*25) within floor of the sum
		{3, 279},
		{4, 400},
	}
	for _, tt := range tests {
		if got := ExperienceToNextLevel(tt.level); got != tt.want {
			t.Errorf("ExperienceToNextLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestExperienceToNextLevelIncreasing(t *testing.T) {
	prev := 0
	for level := 1; level <= 100; level++ {
		cur := ExperienceToNextLevel(level)
		if cur <= prev {
			t.Fatalf("threshold not increasing at level %d: %d <= %d", level, cur, prev)
		}
		prev = cur
	}
}

func TestDrainLevelUpsSingle(t *testing.T) {
	s := NewState()
	s.Experience = 94

	gained := s.DrainLevelUps()

	if gained != 1 {
		t.Errorf("levels gained = %d, want 1", gained)
	}
	if s.Level != 2 {
		t.Errorf("Level = %d, want 2", s.Level)
	}
	if s.Experience != 19 {
		t.Errorf("Experience = %d, want 19", s.Experience)
	}
	if s.ExperienceToNextLevel != 170 {
		t.Errorf("ExperienceToNextLevel = %d, want 170", s.ExperienceToNextLevel)
	}
}

func TestDrainLevelUpsMultiple(t *testing.T) {
	s := NewState()
	// Enough to clear level 1 (75) and level 2 (170) with 10 left over.
	s.Experience = 75 + 170 + 10

	gained := s.DrainLevelUps()

	if gained != 2 {
		t.Errorf("levels gained = %d, want 2", gained)
	}
	if s.Level != 3 {
		t.Errorf("Level = %d, want 3", s.Level)
	}
	if s.Experience != 10 {
		t.Errorf("Experience = %d, want 10", s.Experience)
	}
}

func TestDrainLevelUpsInvariant(t *testing.T) {
	amounts := []int{0, 1, 74, 75, 76, 500, 12345}
	for _, xp := range amounts {
		s := NewState()
		s.Experience = xp
		s.DrainLevelUps()
		if s.Experience >= s.ExperienceToNextLevel {
			t.Errorf("xp %d: experience %d >= threshold %d", xp, s.Experience, s.ExperienceToNextLevel)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := NewState()
	s.CategoryMastery["science"] = CategoryMastery{QuestionsAnswered: 3}

	c := s.Clone()
	c.CategoryMastery["science"] = CategoryMastery{QuestionsAnswered: 99}
	c.Level = 10

	if s.CategoryMastery["science"].QuestionsAnswered != 3 {
		t.Error("clone shares category map with original")
	}
	if s.Level != 1 {
		t.Error("clone shares scalar fields with original")
	}
}
