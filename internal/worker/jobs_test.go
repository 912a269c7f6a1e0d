//go:build unit

package worker

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"field-booking/internal/pkg/config"
	commandsmock "field-booking/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewHoldSweeper(t *testing.T) {
	ctrl := gomock.NewController(t)
	holds := commandsmock.NewMockHoldCommands(ctrl)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	cfg := config.Config{Booking: config.BookingConfig{HoldSweepInterval: time.Minute}}

	holds.EXPECT().SweepExpired(gomock.Any()).Return(int64(3), nil)

	l := NewHoldSweeper(holds, cfg, logger)
	assert.Equal(t, "hold-sweeper", l.Name)
	assert.Equal(t, time.Minute, l.Interval)
	require.NoError(t, l.Tick(context.Background()))
	assert.Empty(t, buf.String(), "the sweep is logged once by the hold commands")
}
