package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Create inserts a pending booking. It runs in a single transaction that
	// locks the resource row and re-checks the overlap predicate under the
	// lock, so two concurrent requests for the same resource serialize and
	// the loser gets ErrTimeConflict.
	Create(ctx context.Context, b *Booking) error

	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*Booking, error)
	ListByServicer(ctx context.Context, servicerID string, status Status) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id string, status Status) error

	// HasOverlap checks whether any active booking on the resource overlaps
	// [start, end] (inclusive bounds).
	HasOverlap(ctx context.Context, resourceID string, start, end time.Time) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// overlapExistsSQL builds the EXISTS query for the conflict predicate:
// same resource, status pending or approved, and
// existing.start <= new.end AND existing.end >= new.start.
func overlapExistsSQL(resourceID string, start, end time.Time) (string, []interface{}, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	subQuery := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.Eq{"status": activeStatuses}).
		Where(squirrel.LtOrEq{"start_time": end}).
		Where(squirrel.GtOrEq{"end_time": start})

	sql, args, err := subQuery.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build check overlap query failed: %w", err)
	}
	return "SELECT EXISTS (" + sql + ")", args, nil
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the resource row so concurrent creations on the same resource
	// cannot both pass the overlap check.
	var lockedID string
	err = tx.QueryRow(ctx, `SELECT id FROM public.resources WHERE id = $1 FOR UPDATE`, b.ResourceID).
		Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrResourceNotFound
		}
		return fmt.Errorf("lock resource failed: %w", err)
	}

	query, args, err := overlapExistsSQL(b.ResourceID, b.StartTime, b.EndTime)
	if err != nil {
		return err
	}

	var exists bool
	if err := tx.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return fmt.Errorf("check overlap failed: %w", err)
	}
	if exists {
		return ErrTimeConflict
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	insert, insertArgs, err := psql.Insert("public.bookings").
		Columns("resource_id", "user_id", "start_time", "end_time", "status", "purpose").
		Values(b.ResourceID, b.UserID, b.StartTime, b.EndTime, b.Status, b.Purpose).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, insert, insertArgs...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}

	return tx.Commit(ctx)
}

const selectBookingSQL = `
	SELECT b.id, b.resource_id, r.name, r.location, r.servicer_id,
	       b.user_id, u.name, u.email,
	       b.start_time, b.end_time, b.status, b.purpose, b.created_at, b.updated_at
	FROM public.bookings b
	JOIN public.resources r ON b.resource_id = r.id
	JOIN public.users u ON b.user_id = u.id
`

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	row := r.pool.QueryRow(ctx, selectBookingSQL+` WHERE b.id = $1`, id)

	var b Booking
	if err := scanBooking(row, &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	query := selectBookingSQL + ` WHERE b.user_id = $1 ORDER BY b.created_at DESC`
	return r.queryList(ctx, query, userID)
}

func (r *pgxRepository) ListByServicer(ctx context.Context, servicerID string, status Status) ([]*Booking, error) {
	query := selectBookingSQL + ` WHERE r.servicer_id = $1`
	args := []any{servicerID}
	if status != "" {
		query += ` AND b.status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY b.created_at DESC`
	return r.queryList(ctx, query, args...)
}

func (r *pgxRepository) queryList(ctx context.Context, query string, args ...any) ([]*Booking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, rows.Err()
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) HasOverlap(ctx context.Context, resourceID string, start, end time.Time) (bool, error) {
	query, args, err := overlapExistsSQL(resourceID, start, end)
	if err != nil {
		return false, err
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check overlap failed: %w", err)
	}
	return exists, nil
}

func scanBooking(row pgx.Row, b *Booking) error {
	return row.Scan(
		&b.ID, &b.ResourceID, &b.ResourceName, &b.ResourceLocation, &b.ResourceServicerID,
		&b.UserID, &b.UserName, &b.UserEmail,
		&b.StartTime, &b.EndTime, &b.Status, &b.Purpose, &b.CreatedAt, &b.UpdatedAt,
	)
}
