package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/quizbox/ent"
	"github.com/abhisek/quizbox/ent/game"
	"github.com/abhisek/quizbox/internal/history"
)

// GameRepo manages the game-history log. It is the history.Log that
// reconciliation replays, plus the write side the session screen uses.
type GameRepo interface {
	history.Log

	// Append records a freshly dealt game.
	Append(ctx context.Context, rec *history.GameRecord) error

	// UpdateAssignments replaces the assignment map of an in-progress
	// game (e.g. a button marked answered).
	UpdateAssignments(ctx context.Context, gameID string, assigned map[string]history.Assignment) error

	// Finish stamps the game as completed.
	Finish(ctx context.Context, gameID string, at time.Time) error

	// Delete removes a game. The caller is expected to follow up with a
	// replace-mode reconciliation so the game's questions return to the
	// pool.
	Delete(ctx context.Context, gameID string) error
}

// gameRepo implements GameRepo using the ent client.
type gameRepo struct {
	client *ent.Client
}

func (r *gameRepo) Append(ctx context.Context, rec *history.GameRecord) error {
	assigned, err := assignmentsToMap(rec.Assigned)
	if err != nil {
		return fmt.Errorf("marshal assignments: %w", err)
	}

	create := r.client.Game.Create().
		SetGameID(rec.ID).
		SetAccountID(rec.AccountID).
		SetStartedAt(rec.StartedAt)
	if assigned != nil {
		create.SetAssigned(assigned)
	}
	if len(rec.LegacyUsed) > 0 {
		create.SetLegacyUsed(rec.LegacyUsed)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("append game: %w", err)
	}
	return nil
}

func (r *gameRepo) UpdateAssignments(ctx context.Context, gameID string, assigned map[string]history.Assignment) error {
	m, err := assignmentsToMap(assigned)
	if err != nil {
		return fmt.Errorf("marshal assignments: %w", err)
	}
	_, err = r.client.Game.Update().
		Where(game.GameID(gameID)).
		SetAssigned(m).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update game assignments: %w", err)
	}
	return nil
}

func (r *gameRepo) Finish(ctx context.Context, gameID string, at time.Time) error {
	_, err := r.client.Game.Update().
		Where(game.GameID(gameID)).
		SetFinishedAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("finish game: %w", err)
	}
	return nil
}

func (r *gameRepo) Delete(ctx context.Context, gameID string) error {
	_, err := r.client.Game.Delete().
		Where(game.GameID(gameID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	return nil
}

func (r *gameRepo) ListGames(ctx context.Context, accountID string) ([]history.GameRecord, error) {
	rows, err := r.client.Game.Query().
		Where(game.AccountID(accountID)).
		Order(ent.Asc(game.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	records := make([]history.GameRecord, 0, len(rows))
	for _, row := range rows {
		rec := history.GameRecord{
			ID:         row.GameID,
			AccountID:  row.AccountID,
			StartedAt:  row.StartedAt,
			LegacyUsed: row.LegacyUsed,
		}
		if len(row.Assigned) > 0 {
			assigned, err := mapToAssignments(row.Assigned)
			if err != nil {
				return nil, fmt.Errorf("decode game %s: %w", row.GameID, err)
			}
			rec.Assigned = assigned
		}
		rec.ResolveFormat()
		records = append(records, rec)
	}
	return records, nil
}

// assignmentsToMap converts typed assignments to the map[string]any
// shape ent stores as JSON.
func assignmentsToMap(assigned map[string]history.Assignment) (map[string]any, error) {
	if assigned == nil {
		return nil, nil
	}
	b, err := json.Marshal(assigned)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func mapToAssignments(m map[string]any) (map[string]history.Assignment, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var assigned map[string]history.Assignment
	if err := json.Unmarshal(b, &assigned); err != nil {
		return nil, err
	}
	return assigned, nil
}
