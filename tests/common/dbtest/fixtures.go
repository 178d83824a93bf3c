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

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, name, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, email, strings.Split(email, "@")[0], role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	return userID
}

// RouteSeed describes a catalog route. Zero dates are stored as NULL.
type RouteSeed struct {
	BasePrice      string
	TotalSeats     int
	AvailableSeats int
	DepartureDate  time.Time
	ReturnDate     time.Time
	IsActive       bool
}

func DefaultRouteSeed() RouteSeed {
	return RouteSeed{
		BasePrice:      "12000000.00",
		TotalSeats:     40,
		AvailableSeats: 40,
		DepartureDate:  time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:     time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		IsActive:       true,
	}
}

// Catalog holds the ids of one destination with its ship, route and activity.
type Catalog struct {
	DestinationID uuid.UUID
	ShipID        uuid.UUID
	RouteID       uuid.UUID
	ActivityID    uuid.UUID
}

func CreateTestCatalog(t *testing.T, db DBLike, seed RouteSeed) Catalog {
	t.Helper()

	c := Catalog{
		DestinationID: CreateTestDestination(t, db, "Luna Base"),
		ShipID:        CreateTestShip(t, db, "Aurora", seed.TotalSeats),
	}
	c.RouteID = CreateTestRoute(t, db, c.DestinationID, c.ShipID, seed)
	c.ActivityID = CreateTestActivity(t, db, c.DestinationID, "Moonwalk", "250000.00")
	return c
}

func CreateTestDestination(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO destinations (id, name) VALUES ($1, $2)", id, name)
	require.NoError(t, err)
	return id
}

func CreateTestShip(t *testing.T, db DBLike, name string, capacity int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO ships (id, name, capacity) VALUES ($1, $2, $3)", id, name, max(capacity, 1))
	require.NoError(t, err)
	return id
}

func CreateTestRoute(t *testing.T, db DBLike, destinationID, shipID uuid.UUID, seed RouteSeed) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO routes (id, destination_id, ship_id, base_price, total_seats, available_seats, departure_date, return_date, is_active)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8, $9)`,
		id, destinationID, shipID, seed.BasePrice, seed.TotalSeats, seed.AvailableSeats,
		nullableDate(seed.DepartureDate), nullableDate(seed.ReturnDate), seed.IsActive)
	require.NoError(t, err)
	return id
}

func CreateTestActivity(t *testing.T, db DBLike, destinationID uuid.UUID, name, unitPrice string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO activities (id, destination_id, name, unit_price) VALUES ($1, $2, $3, $4::numeric)",
		id, destinationID, name, unitPrice)
	require.NoError(t, err)
	return id
}

// ReservationSeed inserts a reservation row directly, bypassing the ledger.
// Callers keep routes.available_seats consistent themselves when they need to.
type ReservationSeed struct {
	UserID        uuid.UUID
	RouteID       uuid.UUID
	ShipID        uuid.UUID
	Passengers    int
	Status        string
	Total         string
	DepartureDate time.Time
	ReturnDate    time.Time
}

func CreateTestReservation(t *testing.T, db DBLike, seed ReservationSeed) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO reservations (id, user_id, route_id, ship_id, passengers, status, route_subtotal, activities_subtotal, total_price, departure_date, return_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, 0, $7::numeric, $8, $9)`,
		id, seed.UserID, seed.RouteID, seed.ShipID, seed.Passengers, seed.Status, seed.Total,
		nullableDate(seed.DepartureDate), nullableDate(seed.ReturnDate))
	require.NoError(t, err)
	return id
}

func CreateTestPayment(t *testing.T, db DBLike, reservationID uuid.UUID, amount, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO payments (id, reservation_id, amount, status) VALUES ($1, $2, $3::numeric, $4)",
		id, reservationID, amount, status)
	require.NoError(t, err)
	return id
}

func GetAvailableSeats(t *testing.T, db DBLike, routeID uuid.UUID) int {
	t.Helper()

	var seats int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT available_seats FROM routes WHERE id = $1", routeID).Scan(&seats))
	return seats
}

func SetAvailableSeats(t *testing.T, db DBLike, routeID uuid.UUID, seats int) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE routes SET available_seats = $2 WHERE id = $1", routeID, seats)
	require.NoError(t, err)
}

func GetReservationStatus(t *testing.T, db DBLike, reservationID uuid.UUID) string {
	t.Helper()

	var status string
	require.NoError(t, db.QueryRow(context.Background(), "SELECT status FROM reservations WHERE id = $1", reservationID).Scan(&status))
	return status
}

func GetPaymentStatus(t *testing.T, db DBLike, paymentID uuid.UUID) string {
	t.Helper()

	var status string
	require.NoError(t, db.QueryRow(context.Background(), "SELECT status FROM payments WHERE id = $1", paymentID).Scan(&status))
	return status
}

// CountRows counts rows of table matching an optional WHERE clause.
func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	sql := "SELECT count(*) FROM " + table
	if where != "" {
		sql += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), sql, args...).Scan(&n))
	return n
}

// FailInsertsInto makes every INSERT into table raise until the test ends.
func FailInsertsInto(t *testing.T, db DBLike, table string) {
	t.Helper()

	ctx := context.Background()
	name := "fail_inserts_" + table
	_, err := db.Exec(ctx, `CREATE OR REPLACE FUNCTION `+name+`() RETURNS trigger AS $$
BEGIN
	RAISE EXCEPTION 'injected failure on %', TG_TABLE_NAME;
END;
$$ LANGUAGE plpgsql`)
	require.NoError(t, err)
	_, err = db.Exec(ctx, `CREATE TRIGGER `+name+` BEFORE INSERT ON `+table+` FOR EACH ROW EXECUTE FUNCTION `+name+`()`)
	require.NoError(t, err)

	t.Cleanup(func() {
		_, err := db.Exec(context.Background(), `DROP TRIGGER IF EXISTS `+name+` ON `+table)
		require.NoError(t, err)
		_, err = db.Exec(context.Background(), `DROP FUNCTION IF EXISTS `+name+`()`)
		require.NoError(t, err)
	})
}

func nullableDate(d time.Time) any {
	if d.IsZero() {
		return nil
	}
	return d
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
