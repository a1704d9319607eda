package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPool is the subset of pgxpool.Pool the store uses, so tests can inject
// pgxmock.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore persists reservations in Postgres via a pgx pool. The pool
// hands each in-flight request its own connection, so concurrent sessions
// never share a transaction.
type PostgresStore struct {
	pool PgxPool
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore connects a pool to the given database URL.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// NewPostgresStoreWithPool allows injecting a mock pool in tests.
func NewPostgresStoreWithPool(pool PgxPool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const reservationColumns = `reservation_number, reservation_date, reservation_time, name, phone_number, email_address, guests, reservation_type, address, delivery_time, created_at`

// Insert writes one reservation and returns its generated number.
func (s *PostgresStore) Insert(ctx context.Context, r Reservation) (int64, error) {
	query := `
		INSERT INTO reservations (reservation_date, reservation_time, name, phone_number, email_address, guests, reservation_type, address, delivery_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING reservation_number
	`
	var id int64
	if err := s.pool.QueryRow(ctx, query,
		r.Date,
		r.Time,
		r.Name,
		r.Phone,
		r.Email,
		r.Guests,
		r.Type,
		r.Address,
		r.DeliveryTime,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("store: insert reservation: %w", err)
	}
	return id, nil
}

// FindByID loads a single reservation, ErrNotFound when absent.
func (s *PostgresStore) FindByID(ctx context.Context, id int64) (*Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE reservation_number = $1`
	row := s.pool.QueryRow(ctx, query, id)
	r, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: select by id: %w", err)
	}
	return r, nil
}

// FindByPhone returns all reservations under the phone number.
func (s *PostgresStore) FindByPhone(ctx context.Context, phone string) ([]Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE phone_number = $1 ORDER BY reservation_number`
	rows, err := s.pool.Query(ctx, query, phone)
	if err != nil {
		return nil, fmt.Errorf("store: select by phone: %w", err)
	}
	defer rows.Close()
	return collectReservations(rows)
}

// DeleteByID removes one reservation, reporting whether it existed.
func (s *PostgresStore) DeleteByID(ctx context.Context, id int64) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM reservations WHERE reservation_number = $1`, id)
	if err != nil {
		return false, fmt.Errorf("store: delete by id: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteByPhone removes every reservation under the phone number and returns
// how many were deleted.
func (s *PostgresStore) DeleteByPhone(ctx context.Context, phone string) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM reservations WHERE phone_number = $1`, phone)
	if err != nil {
		return 0, fmt.Errorf("store: delete by phone: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListAll returns every reservation ordered by number.
func (s *PostgresStore) ListAll(ctx context.Context) ([]Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations ORDER BY reservation_number`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("store: list all: %w", err)
	}
	defer rows.Close()
	return collectReservations(rows)
}

// ListOrders returns delivery orders only (delivery type, zero guests).
func (s *PostgresStore) ListOrders(ctx context.Context) ([]Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE reservation_type = $1 AND guests = 0 ORDER BY reservation_number`
	rows, err := s.pool.Query(ctx, query, TypeDelivery)
	if err != nil {
		return nil, fmt.Errorf("store: list orders: %w", err)
	}
	defer rows.Close()
	return collectReservations(rows)
}

// Close releases the pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

func scanReservation(row pgx.Row) (*Reservation, error) {
	var r Reservation
	if err := row.Scan(
		&r.ID,
		&r.Date,
		&r.Time,
		&r.Name,
		&r.Phone,
		&r.Email,
		&r.Guests,
		&r.Type,
		&r.Address,
		&r.DeliveryTime,
		&r.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &r, nil
}

func collectReservations(rows pgx.Rows) ([]Reservation, error) {
	var out []Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("store: scan reservation: %w", err)
		}
		out = append(out, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate reservations: %w", err)
	}
	return out, nil
}
