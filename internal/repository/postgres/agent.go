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

// agentRepository - PostgreSQL реализация AgentRepository
type agentRepository struct {
	db *pgxpool.Pool
}

// NewAgentRepository создает новый экземпляр agentRepository
func NewAgentRepository(db *pgxpool.Pool) repository.AgentRepository {
	return &agentRepository{db: db}
}

func (r *agentRepository) Create(ctx context.Context, agent *domain.Agent) error {
	query := `
		INSERT INTO agents (id, base_id, first_name, last_name, phone, email, salary, hire_date, password_hash, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	agent.ID = uuid.New()

	_, err := r.db.Exec(ctx, query,
		agent.ID,
		agent.BaseID,
		agent.FirstName,
		agent.LastName,
		agent.Phone,
		agent.Email,
		agent.Salary,
		agent.HireDate,
		agent.PasswordHash,
		agent.IsAdmin,
	)

	return err
}

func (r *agentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Agent, error) {
	query := `
		SELECT id, base_id, first_name, last_name, phone, email, salary, hire_date, password_hash, is_admin
		FROM agents
		WHERE id = $1
	`

	agent := &domain.Agent{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&agent.ID,
		&agent.BaseID,
		&agent.FirstName,
		&agent.LastName,
		&agent.Phone,
		&agent.Email,
		&agent.Salary,
		&agent.HireDate,
		&agent.PasswordHash,
		&agent.IsAdmin,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAgentNotFound
		}
		return nil, err
	}

	return agent, nil
}

func (r *agentRepository) GetByEmail(ctx context.Context, email string) (*domain.Agent, error) {
	query := `
		SELECT id, base_id, first_name, last_name, phone, email, salary, hire_date, password_hash, is_admin
		FROM agents
		WHERE email = $1
	`

	agent := &domain.Agent{}
	err := r.db.QueryRow(ctx, query, email).Scan(
		&agent.ID,
		&agent.BaseID,
		&agent.FirstName,
		&agent.LastName,
		&agent.Phone,
		&agent.Email,
		&agent.Salary,
		&agent.HireDate,
		&agent.PasswordHash,
		&agent.IsAdmin,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAgentNotFound
		}
		return nil, err
	}

	return agent, nil
}

func (r *agentRepository) List(ctx context.Context) ([]*domain.Agent, error) {
	query := `
		SELECT id, base_id, first_name, last_name, phone, email, salary, hire_date, password_hash, is_admin
		FROM agents
		ORDER BY hire_date DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agents []*domain.Agent
	for rows.Next() {
		agent := &domain.Agent{}
		err := rows.Scan(
			&agent.ID,
			&agent.BaseID,
			&agent.FirstName,
			&agent.LastName,
			&agent.Phone,
			&agent.Email,
			&agent.Salary,
			&agent.HireDate,
			&agent.PasswordHash,
			&agent.IsAdmin,
		)
		if err != nil {
			return nil, err
		}
		agents = append(agents, agent)
	}

	return agents, nil
}
