package rdb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ovhops/ovhops/domain"
	"github.com/ovhops/ovhops/domain/model"
)

// RunRepository is a GORM-backed implementation of domain.RunRepository.
type RunRepository struct{ db *gorm.DB }

func NewRunRepository(db *gorm.DB) *RunRepository { return &RunRepository{db: db} }

func runToRow(r *model.RunRecord) *RunRow {
	return &RunRow{
		ID:        r.ID,
		Kind:      string(r.Kind),
		Resource:  r.Resource,
		Name:      r.Name,
		Type:      r.Type,
		Action:    r.Action,
		Changed:   r.Changed,
		CheckMode: r.CheckMode,
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
	}
}

func runToModel(r *RunRow) *model.RunRecord {
	return &model.RunRecord{
		ID:        r.ID,
		Kind:      model.RunKind(r.Kind),
		Resource:  r.Resource,
		Name:      r.Name,
		Type:      r.Type,
		Action:    r.Action,
		Changed:   r.Changed,
		CheckMode: r.CheckMode,
		Message:   r.Message,
		CreatedAt: r.CreatedAt,
	}
}

func (r *RunRepository) Create(ctx context.Context, rec *model.RunRecord) error {
	row := runToRow(rec)
	if row.ID == "" {
		row.ID = "run-" + uuid.NewString()
		rec.ID = row.ID
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
		rec.CreatedAt = row.CreatedAt
	}
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *RunRepository) List(ctx context.Context) ([]*model.RunRecord, error) {
	var rows []RunRow
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*model.RunRecord, 0, len(rows))
	for i := range rows {
		out = append(out, runToModel(&rows[i]))
	}
	return out, nil
}

var _ domain.RunRepository = (*RunRepository)(nil)
