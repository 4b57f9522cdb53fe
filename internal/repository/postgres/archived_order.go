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

type archivedOrderRepository struct {
	db *pgxpool.Pool
}

func NewArchivedOrderRepository(db *pgxpool.Pool) repository.ArchivedOrderRepository {
	return &archivedOrderRepository{db: db}
}

func (r *archivedOrderRepository) Create(ctx context.Context, order *domain.ArchivedOrder) error {
	query := `
		INSERT INTO archived_orders (id, client_id, car_id, order_date, rent_start_date, rent_end_date, delete_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	order.ID = uuid.New()

	_, err := r.db.Exec(ctx, query,
		order.ID,
		order.ClientID,
		order.CarID,
		order.OrderDate,
		order.RentStartDate,
		order.RentEndDate,
		order.DeleteDate,
	)

	return err
}

func (r *archivedOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ArchivedOrder, error) {
	query := `
		SELECT id, client_id, car_id, order_date, rent_start_date, rent_end_date, delete_date
		FROM archived_orders
		WHERE id = $1
	`

	order := &domain.ArchivedOrder{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.ClientID,
		&order.CarID,
		&order.OrderDate,
		&order.RentStartDate,
		&order.RentEndDate,
		&order.DeleteDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArchivedOrderNotFound
		}
		return nil, err
	}

	return order, nil
}

func (r *archivedOrderRepository) List(ctx context.Context) ([]*domain.ArchivedOrder, error) {
	query := `
		SELECT id, client_id, car_id, order_date, rent_start_date, rent_end_date, delete_date
		FROM archived_orders
		ORDER BY delete_date DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*domain.ArchivedOrder
	for rows.Next() {
		order := &domain.ArchivedOrder{}
		err := rows.Scan(
			&order.ID,
			&order.ClientID,
			&order.CarID,
			&order.OrderDate,
			&order.RentStartDate,
			&order.RentEndDate,
			&order.DeleteDate,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}
