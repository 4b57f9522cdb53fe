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

type repairRepository struct {
	db *pgxpool.Pool
}

func NewRepairRepository(db *pgxpool.Pool) repository.RepairRepository {
	return &repairRepository{db: db}
}

func (r *repairRepository) Create(ctx context.Context, repair *domain.Repair) error {
	query := `
		INSERT INTO repairs (id, mechanic_id, car_id, repair_date, costs)
		VALUES ($1, $2, $3, $4, $5)
	`

	repair.ID = uuid.New()

	_, err := r.db.Exec(ctx, query,
		repair.ID,
		repair.MechanicID,
		repair.CarID,
		repair.RepairDate,
		repair.Costs,
	)

	return err
}

func (r *repairRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Repair, error) {
	query := `
		SELECT id, mechanic_id, car_id, repair_date, costs
		FROM repairs
		WHERE id = $1
	`

	repair := &domain.Repair{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&repair.ID,
		&repair.MechanicID,
		&repair.CarID,
		&repair.RepairDate,
		&repair.Costs,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRepairNotFound
		}
		return nil, err
	}

	return repair, nil
}

func (r *repairRepository) List(ctx context.Context) ([]*domain.Repair, error) {
	query := `
		SELECT id, mechanic_id, car_id, repair_date, costs
		FROM repairs
		ORDER BY repair_date DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var repairs []*domain.Repair
	for rows.Next() {
		repair := &domain.Repair{}
		err := rows.Scan(
			&repair.ID,
			&repair.MechanicID,
			&repair.CarID,
			&repair.RepairDate,
			&repair.Costs,
		)
		if err != nil {
			return nil, err
		}
		repairs = append(repairs, repair)
	}

	return repairs, nil
}

func (r *repairRepository) Update(ctx context.Context, repair *domain.Repair) error {
	query := `
		UPDATE repairs
		SET mechanic_id = $2, car_id = $3, repair_date = $4, costs = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		repair.ID,
		repair.MechanicID,
		repair.CarID,
		repair.RepairDate,
		repair.Costs,
	)

	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRepairNotFound
	}

	return nil
}

func (r *repairRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM repairs WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRepairNotFound
	}

	return nil
}
