package store

import (
	"context"
	"fmt"

	"github.com/abhisek/odootrail/ent"
	"github.com/abhisek/odootrail/ent/progressrecord"
)

// progressKey is the fixed namespace key for the single progress record.
// Kept equal to the original storage key so migrated data keeps loading.
const progressKey = "odooMastery_progress"

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Load(ctx context.Context) (map[string]any, bool, error) {
	rec, err := r.client.ProgressRecord.Query().
		Where(progressrecord.Key(progressKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load progress record: %w", err)
	}
	return rec.Data, true, nil
}

func (r *progressRepo) Save(ctx context.Context, data map[string]any) error {
	rec, err := r.client.ProgressRecord.Query().
		Where(progressrecord.Key(progressKey)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query progress record: %w", err)
		}
		_, err = r.client.ProgressRecord.Create().
			SetKey(progressKey).
			SetData(data).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create progress record: %w", err)
		}
		return nil
	}

	_, err = rec.Update().SetData(data).Save(ctx)
	if err != nil {
		return fmt.Errorf("overwrite progress record: %w", err)
	}
	return nil
}

func (r *progressRepo) Clear(ctx context.Context) error {
	_, err := r.client.ProgressRecord.Delete().
		Where(progressrecord.Key(progressKey)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear progress record: %w", err)
	}
	return nil
}
