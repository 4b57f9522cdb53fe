package postgres

import (
	"context"
	"errors"

	"github.com/frontandrew/rental/internal/domain"
	"github.com/frontandrew/rental/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type baseRepository struct {
	db *pgxpool.Pool
}

func NewBaseRepository(db *pgxpool.Pool) repository.BaseRepository {
	return &baseRepository{db: db}
}

func (r *baseRepository) Create(ctx context.Context, base *domain.Base) error {
	query := `
		INSERT INTO bases (id, name, region, city, address, phone)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	base.ID = uuid.New()

	_, err := r.db.Exec(ctx, query,
		base.ID,
		base.Name,
		base.Region,
		base.City,
		base.Address,
		base.Phone,
	)

	return err
}

func (r *baseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Base, error) {
	query := `
		SELECT id, name, region, city, address, phone
		FROM bases
		WHERE id = $1
	`

	base := &domain.Base{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&base.ID,
		&base.Name,
		&base.Region,
		&base.City,
		&base.Address,
		&base.Phone,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBaseNotFound
		}
		return nil, err
	}

	return base, nil
}

func (r *baseRepository) List(ctx context.Context) ([]*domain.Base, error) {
	query := `
		SELECT id, name, region, city, address, phone
		FROM bases
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bases []*domain.Base
	for rows.Next() {
		base := &domain.Base{}
		err := rows.Scan(
			&base.ID,
			&base.Name,
			&base.Region,
			&base.City,
			&base.Address,
			&base.Phone,
		)
		if err != nil {
			return nil, err
		}
		bases = append(bases, base)
	}

	return bases, nil
}

func (r *baseRepository) Update(ctx context.Context, base *domain.Base) error {
	query := `
		UPDATE bases
		SET name = $2, region = $3, city = $4, address = $5, phone = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		base.ID,
		base.Name,
		base.Region,
		base.City,
		base.Address,
		base.Phone,
	)

	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrBaseNotFound
	}

	return nil
}

func (r *baseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bases WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrBaseNotFound
	}

	return nil
}
