// Package engine orchestrates one progression update cycle: aggregate a
// finished session, fold it into the durable player state, evaluate
// achievements, and persist the result.
package engine

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"guessr/internal/achievements"
	"guessr/internal/player"
	"guessr/internal/progression"
	"guessr/internal/session"
	"guessr/internal/skills"
	"guessr/internal/store"
)

// Phase names one step of the update cycle, for logs and errors.
type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhaseAggregating Phase = "aggregating"
	PhaseUpdating    Phase = "updating"
	PhasePersisting  Phase = "persisting"
	PhaseDone        Phase = "done"
	PhaseFailed      Phase = "failed"
)

// Result is returned to the caller after a completed cycle. It is
// informational only; the engine persists nothing from it.
type Result struct {
	CycleID          string
	SessionID        string
	ExperienceGained int
	LevelsGained     int
	NewlyUnlocked    []achievements.Definition
	OverallScore     int
	Summary          *session.Summary
}

// Service runs progression cycles against a durable store. The caller is
// responsible for serializing cycles: at most one runs per player at a
// time.
type Service struct {
	store   store.Store
	catalog []achievements.Definition
	log     *logrus.Entry
	now     func() time.Time
}

// New creates a Service with the shipped achievement catalog.
func New(st store.Store, log *logrus.Logger) *Service {
	return &Service{
		store:   st,
		catalog: achievements.Catalog(),
		log:     log.WithField("component", "engine"),
		now:     time.Now,
	}
}

// Complete runs the full cycle for one finished session. On any error
// before the persist step, no state is written; a persist failure is
// safe to retry by calling Complete again with the same inputs.
func (s *Service) Complete(ctx context.Context, mode session.Mode, answers []session.AnswerEvent) (*Result, error) {
	cycleID := uuid.NewString()
	log := s.log.WithField("cycle_id", cycleID)

	if err := session.Validate(mode, answers); err != nil {
		return nil, &InputError{Err: err}
	}

	prior, err := s.loadPlayerState(ctx, log)
	if err != nil {
		return nil, err
	}
	priorAch, err := s.loadAchievementState(ctx)
	if err != nil {
		return nil, err
	}

	log.WithField("phase", PhaseAggregating).Debug("aggregating session")
	sum, err := session.Aggregate(mode, answers)
	if err != nil {
		return nil, &InputError{Err: err}
	}

	log.WithField("phase", PhaseUpdating).Debug("updating player state")

	// Both models read the pre-update snapshot; their deltas touch
	// disjoint fields and are merged onto one copy.
	updated := prior.Clone()
	newRatings := skills.Update(prior.SkillRatings, sum)
	expRes := progression.ApplyExperience(updated, sum)
	updated.SkillRatings = newRatings
	progression.ApplyStats(updated, sum)

	now := s.now()
	applyMilestones(updated, sum, now)

	achState, unlocked := achievements.Evaluate(s.catalog, sum, updated, priorAch, now)
	updated.OverallScore = progression.OverallScore(updated, achState.UnlockedCount())

	log.WithField("phase", PhasePersisting).Debug("writing state")
	if err := s.persist(ctx, updated, achState); err != nil {
		log.WithField("phase", PhaseFailed).WithError(err).Error("progression cycle failed")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"phase":      PhaseDone,
		"session_id": sum.ID,
		"xp_gained":  expRes.Gained,
		"levels":     expRes.LevelsGained,
		"unlocked":   len(unlocked),
	}).Info("progression cycle complete")

	return &Result{
		CycleID:          cycleID,
		SessionID:        sum.ID,
		ExperienceGained: expRes.Gained,
		LevelsGained:     expRes.LevelsGained,
		NewlyUnlocked:    unlocked,
		OverallScore:     updated.OverallScore,
		Summary:          sum,
	}, nil
}

// PlayerState loads the durable player state, healing any invariant
// drift left by a partially applied past write.
func (s *Service) PlayerState(ctx context.Context) (*player.State, error) {
	return s.loadPlayerState(ctx, s.log)
}

// AchievementState loads the durable achievement state.
func (s *Service) AchievementState(ctx context.Context) (achievements.State, error) {
	return s.loadAchievementState(ctx)
}

// Catalog returns the achievement catalog the service evaluates.
func (s *Service) Catalog() []achievements.Definition {
	return s.catalog
}

func (s *Service) loadPlayerState(ctx context.Context, log *logrus.Entry) (*player.State, error) {
	raw, err := s.store.Load(ctx, store.KeyPlayerState)
	if err != nil {
		return nil, &PersistenceError{Key: store.KeyPlayerState, Err: err}
	}
	if raw == nil {
		return player.NewState(), nil
	}

	st := player.NewState()
	if err := json.Unmarshal(raw, st); err != nil {
		return nil, &PersistenceError{Key: store.KeyPlayerState, Err: err}
	}

	// Self-heal: drain any overflow instead of rejecting the load.
	if st.Experience >= player.ExperienceToNextLevel(st.Level) {
		before := st.Level
		st.DrainLevelUps()
		log.WithFields(logrus.Fields{
			"level_before": before,
			"level_after":  st.Level,
		}).Warn("healed experience overflow in loaded state")
	}
	return st, nil
}

func (s *Service) loadAchievementState(ctx context.Context) (achievements.State, error) {
	raw, err := s.store.Load(ctx, store.KeyAchievementState)
	if err != nil {
		return nil, &PersistenceError{Key: store.KeyAchievementState, Err: err}
	}
	if raw == nil {
		return achievements.NewState(), nil
	}

	st := achievements.NewState()
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, &PersistenceError{Key: store.KeyAchievementState, Err: err}
	}
	return st, nil
}

// persist writes player state before achievement state. The store is
// atomic per key only; if the second write fails, the next load finds a
// consistent player state and re-evaluating achievements is harmless
// because predicates are side-effect-free.
func (s *Service) persist(ctx context.Context, st *player.State, ach achievements.State) error {
	playerRaw, err := json.Marshal(st)
	if err != nil {
		return &PersistenceError{Key: store.KeyPlayerState, Err: err}
	}
	achRaw, err := json.Marshal(ach)
	if err != nil {
		return &PersistenceError{Key: store.KeyAchievementState, Err: err}
	}

	if err := s.store.Save(ctx, store.KeyPlayerState, playerRaw); err != nil {
		return &PersistenceError{Key: store.KeyPlayerState, Err: err}
	}
	if err := s.store.Save(ctx, store.KeyAchievementState, achRaw); err != nil {
		return &PersistenceError{Key: store.KeyAchievementState, Err: err}
	}
	return nil
}
