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

type carRepository struct {
	db *pgxpool.Pool
}

func NewCarRepository(db *pgxpool.Pool) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, car *domain.Car) error {
	query := `
		INSERT INTO cars (id, base_id, mark, model, registration_number, production_year, rent_price, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	car.ID = uuid.New()

	// Нормализуем номер перед сохранением
	car.RegistrationNumber = domain.NormalizeRegistrationNumber(car.RegistrationNumber)

	_, err := r.db.Exec(ctx, query,
		car.ID,
		car.BaseID,
		car.Mark,
		car.Model,
		car.RegistrationNumber,
		car.ProductionYear,
		car.RentPrice,
		car.Category,
	)

	return err
}

func (r *carRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	query := `
		SELECT id, base_id, mark, model, registration_number, production_year, rent_price, category
		FROM cars
		WHERE id = $1
	`

	car := &domain.Car{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&car.ID,
		&car.BaseID,
		&car.Mark,
		&car.Model,
		&car.RegistrationNumber,
		&car.ProductionYear,
		&car.RentPrice,
		&car.Category,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCarNotFound
		}
		return nil, err
	}

	return car, nil
}

func (r *carRepository) List(ctx context.Context) ([]*domain.Car, error) {
	query := `
		SELECT id, base_id, mark, model, registration_number, production_year, rent_price, category
		FROM cars
		ORDER BY mark, model
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []*domain.Car
	for rows.Next() {
		car := &domain.Car{}
		err := rows.Scan(
			&car.ID,
			&car.BaseID,
			&car.Mark,
			&car.Model,
			&car.RegistrationNumber,
			&car.ProductionYear,
			&car.RentPrice,
			&car.Category,
		)
		if err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}

	return cars, nil
}

func (r *carRepository) Update(ctx context.Context, car *domain.Car) error {
	query := `
		UPDATE cars
		SET base_id = $2, mark = $3, model = $4, registration_number = $5, production_year = $6, rent_price = $7, category = $8
		WHERE id = $1
	`

	car.RegistrationNumber = domain.NormalizeRegistrationNumber(car.RegistrationNumber)

	result, err := r.db.Exec(ctx, query,
		car.ID,
		car.BaseID,
		car.Mark,
		car.Model,
		car.RegistrationNumber,
		car.ProductionYear,
		car.RentPrice,
		car.Category,
	)

	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrCarNotFound
	}

	return nil
}

func (r *carRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM cars WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrCarNotFound
	}

	return nil
}
