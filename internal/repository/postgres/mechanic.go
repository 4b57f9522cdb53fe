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

type mechanicRepository struct {
	db *pgxpool.Pool
}

func NewMechanicRepository(db *pgxpool.Pool) repository.MechanicRepository {
	return &mechanicRepository{db: db}
}

func (r *mechanicRepository) Create(ctx context.Context, mechanic *domain.Mechanic) error {
	query := `
		INSERT INTO mechanics (id, base_id, first_name, last_name, phone, salary, hire_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	mechanic.ID = uuid.New()

	_, err := r.db.Exec(ctx, query,
		mechanic.ID,
		mechanic.BaseID,
		mechanic.FirstName,
		mechanic.LastName,
		mechanic.Phone,
		mechanic.Salary,
		mechanic.HireDate,
	)

	return err
}

func (r *mechanicRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Mechanic, error) {
	query := `
		SELECT id, base_id, first_name, last_name, phone, salary, hire_date
		FROM mechanics
		WHERE id = $1
	`

	mechanic := &domain.Mechanic{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&mechanic.ID,
		&mechanic.BaseID,
		&mechanic.FirstName,
		&mechanic.LastName,
		&mechanic.Phone,
		&mechanic.Salary,
		&mechanic.HireDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMechanicNotFound
		}
		return nil, err
	}

	return mechanic, nil
}

func (r *mechanicRepository) List(ctx context.Context) ([]*domain.Mechanic, error) {
	query := `
		SELECT id, base_id, first_name, last_name, phone, salary, hire_date
		FROM mechanics
		ORDER BY hire_date DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mechanics []*domain.Mechanic
	for rows.Next() {
		mechanic := &domain.Mechanic{}
		err := rows.Scan(
			&mechanic.ID,
			&mechanic.BaseID,
			&mechanic.FirstName,
			&mechanic.LastName,
			&mechanic.Phone,
			&mechanic.Salary,
			&mechanic.HireDate,
		)
		if err != nil {
			return nil, err
		}
		mechanics = append(mechanics, mechanic)
	}

	return mechanics, nil
}

func (r *mechanicRepository) Update(ctx context.Context, mechanic *domain.Mechanic) error {
	query := `
		UPDATE mechanics
		SET base_id = $2, first_name = $3, last_name = $4, phone = $5, salary = $6, hire_date = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		mechanic.ID,
		mechanic.BaseID,
		mechanic.FirstName,
		mechanic.LastName,
		mechanic.Phone,
		mechanic.Salary,
		mechanic.HireDate,
	)

	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrMechanicNotFound
	}

	return nil
}

func (r *mechanicRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM mechanics WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrMechanicNotFound
	}

	return nil
}
