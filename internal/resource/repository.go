package resource

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, res *Resource) error
	GetByID(ctx context.Context, id string) (*Resource, error)
	Search(ctx context.Context, filter Filter) ([]*Resource, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*Resource, error)
	ListByServicer(ctx context.Context, servicerID string) ([]*Resource, error)
	Update(ctx context.Context, res *Resource) error

	// Delete removes the resource and its bookings in one transaction.
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, res *Resource) error {
	const query = `
		INSERT INTO public.resources (name, description, category_id, servicer_id, location, capacity, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		res.Name, res.Description, res.CategoryID, res.ServicerID,
		res.Location, res.Capacity, res.IsAvailable,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		return fmt.Errorf("create resource failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Resource, error) {
	const query = `
		SELECT r.id, r.name, r.description, r.category_id, c.name, r.servicer_id, u.name,
		       r.location, r.capacity, r.is_available, r.created_at
		FROM public.resources r
		JOIN public.categories c ON r.category_id = c.id
		JOIN public.users u ON r.servicer_id = u.id
		WHERE r.id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var res Resource
	if err := scanResource(row, &res); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get resource failed: %w", err)
	}
	return &res, nil
}

func (r *pgxRepository) Search(ctx context.Context, filter Filter) ([]*Resource, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"r.id", "r.name", "r.description", "r.category_id", "c.name", "r.servicer_id", "u.name",
		"r.location", "r.capacity", "r.is_available", "r.created_at",
	).
		From("public.resources r").
		Join("public.categories c ON r.category_id = c.id").
		Join("public.users u ON r.servicer_id = u.id").
		Where(squirrel.Eq{"r.is_available": true})

	if filter.CategoryID != "" {
		query = query.Where(squirrel.Eq{"r.category_id": filter.CategoryID})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"r.name": pattern},
			squirrel.ILike{"r.description": pattern},
		})
	}

	query = query.OrderBy("r.created_at DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search resources query failed: %w", err)
	}

	return r.queryList(ctx, sql, args...)
}

func (r *pgxRepository) ListByCategory(ctx context.Context, categoryID string) ([]*Resource, error) {
	const query = `
		SELECT r.id, r.name, r.description, r.category_id, c.name, r.servicer_id, u.name,
		       r.location, r.capacity, r.is_available, r.created_at
		FROM public.resources r
		JOIN public.categories c ON r.category_id = c.id
		JOIN public.users u ON r.servicer_id = u.id
		WHERE r.category_id = $1
		ORDER BY r.created_at DESC
	`
	return r.queryList(ctx, query, categoryID)
}

func (r *pgxRepository) ListByServicer(ctx context.Context, servicerID string) ([]*Resource, error) {
	const query = `
		SELECT r.id, r.name, r.description, r.category_id, c.name, r.servicer_id, u.name,
		       r.location, r.capacity, r.is_available, r.created_at
		FROM public.resources r
		JOIN public.categories c ON r.category_id = c.id
		JOIN public.users u ON r.servicer_id = u.id
		WHERE r.servicer_id = $1
		ORDER BY r.created_at DESC
	`
	return r.queryList(ctx, query, servicerID)
}

func (r *pgxRepository) queryList(ctx context.Context, query string, args ...any) ([]*Resource, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list resources failed: %w", err)
	}
	defer rows.Close()

	var result []*Resource
	for rows.Next() {
		var res Resource
		if err := scanResource(rows, &res); err != nil {
			return nil, fmt.Errorf("scan resource failed: %w", err)
		}
		result = append(result, &res)
	}

	return result, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, res *Resource) error {
	const query = `
		UPDATE public.resources
		SET name = $1, description = $2, category_id = $3, location = $4, capacity = $5, is_available = $6
		WHERE id = $7
	`
	ct, err := r.pool.Exec(ctx, query,
		res.Name, res.Description, res.CategoryID, res.Location, res.Capacity, res.IsAvailable, res.ID,
	)
	if err != nil {
		return fmt.Errorf("update resource failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete resource tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM public.bookings WHERE resource_id = $1`, id); err != nil {
		return fmt.Errorf("delete resource bookings failed: %w", err)
	}

	ct, err := tx.Exec(ctx, `DELETE FROM public.resources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete resource failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(ctx)
}

func scanResource(row pgx.Row, res *Resource) error {
	return row.Scan(
		&res.ID, &res.Name, &res.Description, &res.CategoryID, &res.CategoryName,
		&res.ServicerID, &res.ServicerName,
		&res.Location, &res.Capacity, &res.IsAvailable, &res.CreatedAt,
	)
}
