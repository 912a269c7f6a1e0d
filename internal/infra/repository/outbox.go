package repository

import (
	"context"
	"time"

	"field-booking/internal/infra"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=outbox.go -destination=../../../tests/mock/repository/outbox.go -package=repositorymock

type OutboxQueries interface {
	EnqueueEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.EnqueueEventParams) error
	ClaimPendingEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimPendingEventsParams) ([]sqlc.ClaimPendingEventsRow, error)
	MarkEventPublished(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkEventPublishedParams) error
	MarkEventFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkEventFailedParams) error
}

type OutboxRepository struct {
	queries OutboxQueries
}

func NewOutboxRepository(queries OutboxQueries) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, event shared.Event) error {
	id := event.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	err := r.queries.EnqueueEvent(ctx, tx, sqlc.EnqueueEventParams{
		ID:          id,
		Kind:        string(event.Kind),
		AggregateID: event.AggregateID,
		ResourceID:  event.ResourceID,
		Payload:     event.Payload,
		CreatedAt:   pgconv.TimeToPgtype(event.OccurredAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue event", err)
	}
	return nil
}

// ClaimPending locks up to batchSize unpublished rows; concurrent relays skip them.
func (r *OutboxRepository) ClaimPending(ctx context.Context, tx sqlc.DBTX, batchSize, maxAttempts int) ([]shared.Event, error) {
	rows, err := r.queries.ClaimPendingEvents(ctx, tx, sqlc.ClaimPendingEventsParams{
		MaxAttempts: int32(maxAttempts), // #nosec G115 -- config bounded
		BatchSize:   int32(batchSize),   // #nosec G115 -- config bounded
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim pending events", err)
	}

	events := make([]shared.Event, len(rows))
	for i, row := range rows {
		events[i] = shared.Event{
			ID:          row.ID,
			Kind:        shared.EventKind(row.Kind),
			AggregateID: row.AggregateID,
			ResourceID:  row.ResourceID,
			Payload:     row.Payload,
			OccurredAt:  pgconv.TimeFromPgtype(row.CreatedAt),
			Attempts:    int(row.Attempts),
		}
	}
	return events, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error {
	err := r.queries.MarkEventPublished(ctx, tx, sqlc.MarkEventPublishedParams{
		ID:          id,
		PublishedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark event published", err)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, reason string) error {
	err := r.queries.MarkEventFailed(ctx, tx, sqlc.MarkEventFailedParams{
		ID:        id,
		LastError: pgconv.StringToPgtype(reason),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark event failed", err)
	}
	return nil
}
