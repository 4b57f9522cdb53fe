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

type clientRepository struct {
	db *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (id, cin, first_name, last_name, phone, address)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	client.ID = uuid.New()

	_, err := r.db.Exec(ctx, query,
		client.ID,
		client.CIN,
		client.FirstName,
		client.LastName,
		client.Phone,
		client.Address,
	)

	return err
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	query := `
		SELECT id, cin, first_name, last_name, phone, address
		FROM clients
		WHERE id = $1
	`

	client := &domain.Client{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&client.ID,
		&client.CIN,
		&client.FirstName,
		&client.LastName,
		&client.Phone,
		&client.Address,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}

	return client, nil
}

func (r *clientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	query := `
		SELECT id, cin, first_name, last_name, phone, address
		FROM clients
		ORDER BY last_name, first_name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		client := &domain.Client{}
		err := rows.Scan(
			&client.ID,
			&client.CIN,
			&client.FirstName,
			&client.LastName,
			&client.Phone,
			&client.Address,
		)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	return clients, nil
}

func (r *clientRepository) Update(ctx context.Context, client *domain.Client) error {
	query := `
		UPDATE clients
		SET cin = $2, first_name = $3, last_name = $4, phone = $5, address = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		client.ID,
		client.CIN,
		client.FirstName,
		client.LastName,
		client.Phone,
		client.Address,
	)

	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}

	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM clients WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}

	return nil
}
