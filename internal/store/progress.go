package store

import (
	"context"
	"fmt"
	"time"

	"github.com/nandinis/edudeck/ent"
	"github.com/nandinis/edudeck/ent/gameprogress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Load(ctx context.Context, gameID string) (*Progress, error) {
	gp, err := r.client.GameProgress.Query().
		Where(gameprogress.GameID(gameID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &Progress{GameID: gameID}, nil
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}

	return &Progress{
		GameID:            gp.GameID,
		HighScore:         gp.HighScore,
		LevelsCompleted:   gp.LevelsCompleted,
		LastPlayed:        gp.LastPlayed,
		TotalPlayTimeSecs: gp.TotalPlayTimeSecs,
	}, nil
}

// Save merges the update monotonically: the stored high score and
// levels completed only ever increase, play time accumulates, and the
// last-played timestamp is refreshed. A lower score leaves the stored
// high score untouched.
func (r *progressRepo) Save(ctx context.Context, gameID string, update ProgressUpdate) error {
	now := time.Now()

	gp, err := r.client.GameProgress.Query().
		Where(gameprogress.GameID(gameID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query progress: %w", err)
		}
		_, err = r.client.GameProgress.Create().
			SetGameID(gameID).
			SetHighScore(max(update.Score, 0)).
			SetLevelsCompleted(max(update.LevelCompleted, 0)).
			SetLastPlayed(now).
			SetTotalPlayTimeSecs(max(update.PlayTimeSecs, 0)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create progress: %w", err)
		}
		return nil
	}

	builder := gp.Update().
		SetLastPlayed(now).
		SetTotalPlayTimeSecs(gp.TotalPlayTimeSecs + max(update.PlayTimeSecs, 0))

	if update.Score > gp.HighScore {
		builder = builder.SetHighScore(update.Score)
	}
	if update.LevelCompleted > gp.LevelsCompleted {
		builder = builder.SetLevelsCompleted(update.LevelCompleted)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	return nil
}
