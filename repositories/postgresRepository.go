package repositories

import (
	"ClinicDesk/models"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresRepository stores documents as rows of the documents table.
type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var doc models.Document
	err := r.db.WithContext(ctx).Select("key, value").First(&doc, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to get document %s", key)
	}
	return doc.Value, true, nil
}

func (r *PostgresRepository) Set(ctx context.Context, key, value string) error {
	doc := models.Document{Key: key, Value: value}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return errors.Wrapf(err, "failed to save document %s", key)
	}
	return nil
}
