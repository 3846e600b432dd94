package records

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"servizi-facili-be/internal/pkg/logger"
)

type recordRow struct {
	SessionId string         `gorm:"primaryKey;size:36"`
	Name      string         `gorm:"primaryKey;size:64"`
	Payload   datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (recordRow) TableName() string {
	return "assistant_records"
}

// GormStore persists records in Postgres, one row per (session, record).
// Put is an upsert on the composite key.
type GormStore struct {
	db     *gorm.DB
	logger logger.ILogger
}

func NewGormStore(db *gorm.DB, log logger.ILogger) (*GormStore, error) {
	if err := db.AutoMigrate(&recordRow{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db, logger: log}, nil
}

func (s *GormStore) Get(ctx context.Context, sessionId uuid.UUID, name string, out any) (bool, error) {
	var row recordRow
	err := s.db.WithContext(ctx).
		Where("session_id = ? AND name = ?", sessionId.String(), name).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(row.Payload, out); err != nil {
		s.logger.Warn("records", "Discarding corrupt record", map[string]interface{}{
			"session_id": sessionId.String(),
			"record":     name,
			"error":      err.Error(),
		})
		return false, nil
	}
	return true, nil
}

func (s *GormStore) Put(ctx context.Context, sessionId uuid.UUID, name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	row := recordRow{
		SessionId: sessionId.String(),
		Name:      name,
		Payload:   datatypes.JSON(data),
		UpdatedAt: time.Now(),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&row).Error
}

func (s *GormStore) Delete(ctx context.Context, sessionId uuid.UUID, name string) error {
	return s.db.WithContext(ctx).
		Where("session_id = ? AND name = ?", sessionId.String(), name).
		Delete(&recordRow{}).Error
}
