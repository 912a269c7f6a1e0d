//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference resource types seeded into every test database.
const (
	TypeFiveASide   = "five-a-side"
	TypeSevenASide  = "seven-a-side"
	TypeElevenASide = "eleven-a-side"
)

func ResourceTypeID(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM resource_types WHERE name = $1", name).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateResource(t *testing.T, db DBLike, typeName, name, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	typeID := ResourceTypeID(t, db, typeName)
	_, err := db.Exec(context.Background(),
		"INSERT INTO resources (id, resource_type_id, name, status) VALUES ($1, $2, $3, $4)",
		id, typeID, name, status)
	require.NoError(t, err)
	return id
}

func SetRate(t *testing.T, db DBLike, typeName, dayType, timeBand string, pricePerUnit int64) {
	t.Helper()

	typeID := ResourceTypeID(t, db, typeName)
	_, err := db.Exec(context.Background(), `
		INSERT INTO rates (resource_type_id, day_type, time_band, price_per_unit) VALUES ($1, $2, $3, $4)
		ON CONFLICT (resource_type_id, day_type, time_band) DO UPDATE SET price_per_unit = EXCLUDED.price_per_unit`,
		typeID, dayType, timeBand, pricePerUnit)
	require.NoError(t, err)
}

func DeleteRate(t *testing.T, db DBLike, typeName, dayType, timeBand string) {
	t.Helper()

	typeID := ResourceTypeID(t, db, typeName)
	_, err := db.Exec(context.Background(),
		"DELETE FROM rates WHERE resource_type_id = $1 AND day_type = $2 AND time_band = $3",
		typeID, dayType, timeBand)
	require.NoError(t, err)
}

func CountConfirmedBookings(t *testing.T, db DBLike, resourceID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE resource_id = $1 AND status = 'confirmed'", resourceID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountEvents(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM booking_events WHERE kind = $1", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts the resource types and a flat rate card needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO resource_types (name, unit_minutes) VALUES
		    ('five-a-side', 60),
		    ('seven-a-side', 90),
		    ('eleven-a-side', 120)
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	// weekday evening and weekend are priced higher
	_, err = pool.Exec(ctx, `
		INSERT INTO rates (resource_type_id, day_type, time_band, price_per_unit)
		SELECT rt.id, d.day_type, b.time_band,
		       CASE
		           WHEN d.day_type = 'weekend' THEN 150000
		           WHEN b.time_band = 'evening' THEN 120000
		           ELSE 100000
		       END
		FROM resource_types rt
		CROSS JOIN (VALUES ('weekday'), ('weekend')) AS d(day_type)
		CROSS JOIN (VALUES ('morning'), ('afternoon'), ('evening')) AS b(time_band)
		ON CONFLICT DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
