//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"field-booking/internal/domain/actor"
	"field-booking/internal/infra"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/queries"
	"field-booking/tests/common/builder"
	queriesmock "field-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	view := builder.NewBookingBuilder().BuildView()
	owner := actor.Actor{ID: view.CustomerID, Role: actor.RoleCustomer}

	tests := []struct {
		name    string
		act     actor.Actor
		repoErr error
		wantErr error
	}{
		{name: "owner", act: owner},
		{name: "staff", act: actor.Actor{ID: uuid.New(), Role: actor.RoleStaff}},
		{name: "other customer sees not found", act: actor.Actor{ID: uuid.New(), Role: actor.RoleCustomer}, wantErr: errs.ErrNotFound},
		{name: "missing row", act: owner, repoErr: infra.WrapRepoErr("booking not found", nil, infra.KindNotFound), wantErr: errs.ErrNotFound},
		{name: "db failure", act: owner, repoErr: errors.New("conn refused"), wantErr: errs.ErrDatabaseOperationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			if tt.repoErr != nil {
				store.EXPECT().FindByID(gomock.Any(), view.ID).Return(nil, tt.repoErr)
			} else {
				store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
			}

			got, err := queries.NewBookingQueries(store).GetByID(ctx, tt.act, view.ID)
			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestBookingQueries_ListByCustomer(t *testing.T) {
	ctx := context.Background()
	customer := actor.Actor{ID: uuid.New(), Role: actor.RoleCustomer}
	base := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

	page := make([]*queries.BookingListItem, 3)
	for i := range page {
		page[i] = builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.CreatedAt = base.Add(-time.Duration(i) * time.Hour)
		}).BuildListItem()
	}

	t.Run("first page fetches limit+1 and returns a cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByCustomerFirstPage(gomock.Any(), customer.ID, int32(3)).Return(page, nil)

		items, next, err := queries.NewBookingQueries(store).ListByCustomer(ctx, customer, customer.ID, nil, 2)
		require.NoError(t, err)
		assert.Len(t, items, 2)
		require.NotNil(t, next)

		at, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, page[1].ID, id)
		assert.True(t, page[1].CreatedAt.Equal(at))
	})

	t.Run("cursor continues from the last row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(page[1].CreatedAt, page[1].ID)}
		store.EXPECT().FindByCustomerKeyset(gomock.Any(), customer.ID, gomock.Any(), page[1].ID, int32(3)).
			Return(page[2:], nil)

		items, next, err := queries.NewBookingQueries(store).ListByCustomer(ctx, customer, customer.ID, cursor, 2)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Nil(t, next)
	})

	t.Run("bad cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		_, _, err := queries.NewBookingQueries(store).ListByCustomer(ctx, customer, customer.ID, &queries.Cursor{After: "!!"}, 2)
		assert.True(t, errs.Is(err, errs.ErrInvalidCursor))
	})

	t.Run("customers cannot list others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		_, _, err := queries.NewBookingQueries(store).ListByCustomer(ctx, customer, uuid.New(), nil, 2)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("staff can list anyone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		other := uuid.New()
		store.EXPECT().FindByCustomerFirstPage(gomock.Any(), other, int32(queries.DefaultListLimit+1)).Return(nil, nil)

		items, next, err := queries.NewBookingQueries(store).ListByCustomer(ctx, actor.Actor{ID: uuid.New(), Role: actor.RoleStaff}, other, nil, 0)
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Nil(t, next)
	})
}
