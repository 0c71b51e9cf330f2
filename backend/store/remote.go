package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"glowup/backend/engine"
	"glowup/backend/models"
)

// RemoteStore is the document store boundary backed by the user_records
// table. Put has upsert semantics keyed by owner id; the row's UpdatedAt is
// the server-assigned save timestamp.
type RemoteStore struct {
	DB *gorm.DB
}

func NewRemoteStore(db *gorm.DB) *RemoteStore {
	return &RemoteStore{DB: db}
}

// Get loads the stored aggregate for an owner. ok=false means absent.
// The returned SavedAt reflects the server-assigned update timestamp.
func (r *RemoteStore) Get(ctx context.Context, ownerID string) (engine.UserData, bool, error) {
	var rec models.UserRecord
	err := r.DB.WithContext(ctx).Where("owner_id = ?", ownerID).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return engine.UserData{}, false, nil
		}
		return engine.UserData{}, false, err
	}

	var data engine.UserData
	if err := json.Unmarshal([]byte(rec.Document), &data); err != nil {
		return engine.UserData{}, false, fmt.Errorf("decode remote document: %w", err)
	}
	data.SavedAt = rec.UpdatedAt.UnixMilli()
	return data, true, nil
}

// Put upserts the aggregate document for an owner.
func (r *RemoteStore) Put(ctx context.Context, ownerID string, data engine.UserData) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	rec := models.UserRecord{OwnerID: ownerID, Document: string(b)}
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
		}).
		Create(&rec).Error
}
