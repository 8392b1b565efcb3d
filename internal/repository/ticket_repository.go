package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/digibuster/helpdesk-api/internal/domain"
)

// defaultListLimit caps list queries when the caller does not supply a limit.
// It is a known scale limit, not part of the API contract.
const defaultListLimit = 1000

// TicketFilter is a conjunction of equality predicates used for counting.
type TicketFilter struct {
	CustomerID *string
	Status     *domain.TicketStatus
}

// TicketPatch carries the agent-updatable fields. An empty string means the
// field was not supplied and the stored value stays untouched; this mirrors
// the update contract rather than distinguishing "absent" from "empty".
type TicketPatch struct {
	Status    domain.TicketStatus
	AgentID   string
	AgentName string
}

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	ListByCustomer(ctx context.Context, customerID string, limit int) ([]domain.Ticket, error)
	ListAll(ctx context.Context, limit int) ([]domain.Ticket, error)
	Update(ctx context.Context, id string, patch TicketPatch) (*domain.Ticket, error)
	Count(ctx context.Context, filter TicketFilter) (int64, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates the Postgres-backed repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `id, title, description, category, priority, status,
        customer_id, customer_name, agent_id, agent_name, created_at, updated_at`

// Create persists the ticket, assigning an opaque id and both timestamps.
func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	if ticket.ID == "" {
		ticket.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now

	const query = `
        INSERT INTO tickets (id, title, description, category, priority, status,
            customer_id, customer_name, agent_id, agent_name, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`

	_, err := r.pool.Exec(ctx, query,
		ticket.ID,
		ticket.Title,
		ticket.Description,
		ticket.Category,
		ticket.Priority,
		ticket.Status,
		ticket.CustomerID,
		ticket.CustomerName,
		ticket.AgentID,
		ticket.AgentName,
		ticket.CreatedAt,
		ticket.UpdatedAt,
	)
	return err
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id=$1`
	return scanTicket(r.pool.QueryRow(ctx, query, id))
}

func (r *ticketRepository) ListByCustomer(ctx context.Context, customerID string, limit int) ([]domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE customer_id=$1
        ORDER BY created_at DESC LIMIT $2`
	rows, err := r.pool.Query(ctx, query, customerID, capLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) ListAll(ctx context.Context, limit int) ([]domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets
        ORDER BY created_at DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, capLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

// Update applies only the supplied patch fields and always refreshes
// updated_at. Returns pgx.ErrNoRows when the id does not exist.
func (r *ticketRepository) Update(ctx context.Context, id string, patch TicketPatch) (*domain.Ticket, error) {
	sets := []string{}
	args := []any{}

	if patch.Status != "" {
		args = append(args, patch.Status)
		sets = append(sets, fmt.Sprintf("status=$%d", len(args)))
	}
	if patch.AgentID != "" {
		args = append(args, patch.AgentID)
		sets = append(sets, fmt.Sprintf("agent_id=$%d", len(args)))
	}
	if patch.AgentName != "" {
		args = append(args, patch.AgentName)
		sets = append(sets, fmt.Sprintf("agent_name=$%d", len(args)))
	}

	args = append(args, time.Now().UTC())
	sets = append(sets, fmt.Sprintf("updated_at=$%d", len(args)))

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE tickets SET %s WHERE id=$%d RETURNING `+ticketColumns,
		strings.Join(sets, ", "), len(args))

	return scanTicket(r.pool.QueryRow(ctx, query, args...))
}

func (r *ticketRepository) Count(ctx context.Context, filter TicketFilter) (int64, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.CustomerID != nil {
		args = append(args, *filter.CustomerID)
		clauses = append(clauses, fmt.Sprintf("customer_id=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT COUNT(*) FROM tickets WHERE %s`, strings.Join(clauses, " AND "))

	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func capLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return limit
}

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var ticket domain.Ticket
	if err := row.Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Category,
		&ticket.Priority,
		&ticket.Status,
		&ticket.CustomerID,
		&ticket.CustomerName,
		&ticket.AgentID,
		&ticket.AgentName,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.Title,
			&ticket.Description,
			&ticket.Category,
			&ticket.Priority,
			&ticket.Status,
			&ticket.CustomerID,
			&ticket.CustomerName,
			&ticket.AgentID,
			&ticket.AgentName,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}
