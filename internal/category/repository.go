package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, cat *Category) error
	GetByID(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	ListByServicer(ctx context.Context, servicerID string) ([]*Category, error)
	Update(ctx context.Context, cat *Category) error

	// Delete removes the category together with its resources and their
	// bookings. The cascade is explicit and runs in a single transaction.
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const selectColumns = `
	c.id, c.name, c.description, c.servicer_id, u.name,
	(SELECT count(*) FROM public.resources r WHERE r.category_id = c.id),
	c.created_at
`

func (r *pgxRepository) Create(ctx context.Context, cat *Category) error {
	const query = `
		INSERT INTO public.categories (name, description, servicer_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, cat.Name, cat.Description, cat.ServicerID).
		Scan(&cat.ID, &cat.CreatedAt)
	if err != nil {
		return fmt.Errorf("create category failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Category, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM public.categories c
		JOIN public.users u ON c.servicer_id = u.id
		WHERE c.id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var cat Category
	if err := row.Scan(
		&cat.ID, &cat.Name, &cat.Description, &cat.ServicerID, &cat.ServicerName,
		&cat.ResourceCount, &cat.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get category failed: %w", err)
	}
	return &cat, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Category, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM public.categories c
		JOIN public.users u ON c.servicer_id = u.id
		ORDER BY c.created_at DESC
	`
	return r.queryList(ctx, query)
}

func (r *pgxRepository) ListByServicer(ctx context.Context, servicerID string) ([]*Category, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM public.categories c
		JOIN public.users u ON c.servicer_id = u.id
		WHERE c.servicer_id = $1
		ORDER BY c.created_at DESC
	`
	return r.queryList(ctx, query, servicerID)
}

func (r *pgxRepository) queryList(ctx context.Context, query string, args ...any) ([]*Category, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories failed: %w", err)
	}
	defer rows.Close()

	var result []*Category
	for rows.Next() {
		var cat Category
		if err := rows.Scan(
			&cat.ID, &cat.Name, &cat.Description, &cat.ServicerID, &cat.ServicerName,
			&cat.ResourceCount, &cat.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan category failed: %w", err)
		}
		result = append(result, &cat)
	}

	return result, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, cat *Category) error {
	const query = `
		UPDATE public.categories
		SET name = $1, description = $2
		WHERE id = $3
	`
	ct, err := r.pool.Exec(ctx, query, cat.Name, cat.Description, cat.ID)
	if err != nil {
		return fmt.Errorf("update category failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete category tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := deleteCategoryTree(ctx, tx, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// execer is the slice of pgx.Tx that deleteCategoryTree needs.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// deleteCategoryTree cascades bottom-up: bookings of owned resources, then
// the resources, then the category itself. The caller provides the
// transaction.
func deleteCategoryTree(ctx context.Context, tx execer, id string) error {
	const deleteBookings = `
		DELETE FROM public.bookings
		WHERE resource_id IN (SELECT id FROM public.resources WHERE category_id = $1)
	`
	if _, err := tx.Exec(ctx, deleteBookings, id); err != nil {
		return fmt.Errorf("delete category bookings failed: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM public.resources WHERE category_id = $1`, id); err != nil {
		return fmt.Errorf("delete category resources failed: %w", err)
	}

	ct, err := tx.Exec(ctx, `DELETE FROM public.categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
