package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/quizbox/ent"
	"github.com/abhisek/quizbox/ent/usagestate"
	"github.com/abhisek/quizbox/internal/remote"
)

// FallbackRepo persists the usage document locally, mirroring the
// remote document schema. It is the degraded-mode store used when no
// account is signed in or the remote link is down.
type FallbackRepo interface {
	// LoadDoc returns the stored document for the account key, or
	// (nil, nil) if none exists.
	LoadDoc(ctx context.Context, accountKey string) (*remote.Document, error)

	// SaveDoc upserts the document for the account key.
	SaveDoc(ctx context.Context, accountKey string, doc *remote.Document) error
}

// usageRepo implements FallbackRepo using the ent client.
type usageRepo struct {
	client *ent.Client
}

func (r *usageRepo) LoadDoc(ctx context.Context, accountKey string) (*remote.Document, error) {
	row, err := r.client.UsageState.Query().
		Where(usagestate.AccountKey(accountKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query usage state: %w", err)
	}

	doc := &remote.Document{
		Usage:              row.Usage,
		PoolSize:           row.PoolSize,
		LastUpdated:        row.LastUpdated,
		LastResetTime:      row.LastResetTime,
		CategoryResetTimes: row.CategoryResetTimes,
	}
	if doc.Usage == nil {
		doc.Usage = map[string]int{}
	}
	return doc.Clone(), nil
}

func (r *usageRepo) SaveDoc(ctx context.Context, accountKey string, doc *remote.Document) error {
	doc = doc.Clone()
	if doc.Usage == nil {
		doc.Usage = map[string]int{}
	}
	lastUpdated := doc.LastUpdated
	if lastUpdated.IsZero() {
		lastUpdated = time.Now()
	}

	existing, err := r.client.UsageState.Query().
		Where(usagestate.AccountKey(accountKey)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query usage state: %w", err)
		}
		create := r.client.UsageState.Create().
			SetAccountKey(accountKey).
			SetUsage(doc.Usage).
			SetPoolSize(doc.PoolSize).
			SetLastUpdated(lastUpdated)
		if doc.LastResetTime != nil {
			create.SetLastResetTime(*doc.LastResetTime)
		}
		if doc.CategoryResetTimes != nil {
			create.SetCategoryResetTimes(doc.CategoryResetTimes)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("create usage state: %w", err)
		}
		return nil
	}

	update := existing.Update().
		SetUsage(doc.Usage).
		SetPoolSize(doc.PoolSize).
		SetLastUpdated(lastUpdated)
	if doc.LastResetTime != nil {
		update.SetLastResetTime(*doc.LastResetTime)
	}
	if doc.CategoryResetTimes != nil {
		update.SetCategoryResetTimes(doc.CategoryResetTimes)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("update usage state: %w", err)
	}
	return nil
}
