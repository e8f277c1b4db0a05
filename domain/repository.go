package domain

import (
	"context"

	"github.com/ovhops/ovhops/domain/model"
)

// RunRepository stores and retrieves reconciliation journal entries.
type RunRepository interface {
	Create(ctx context.Context, r *model.RunRecord) error
	List(ctx context.Context) ([]*model.RunRecord, error)
}
