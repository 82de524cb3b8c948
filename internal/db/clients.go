package db

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/botstelegram2025/vendasdigitais/internal/dialog"
)

type Client struct {
	ID          int64     `db:"id"`
	ExternalID  string    `db:"external_id"`
	OwnerChatID int64     `db:"owner_chat_id"`
	Name        string    `db:"name"`
	Phone       string    `db:"phone"`
	Package     string    `db:"package"`
	Price       string    `db:"price"`
	DueDate     string    `db:"due_date"`
	Server      string    `db:"server"`
	Notes       string    `db:"notes"`
	CreatedAt   time.Time `db:"created_at"`
}

// OwnerSummary aggregates one operator's client base for the report view.
type OwnerSummary struct {
	Total   int
	Revenue float64
}

type ClientRepository struct {
	db *sqlx.DB
}

func NewClientRepository(db *sqlx.DB) *ClientRepository {
	return &ClientRepository{
		db: db,
	}
}

// Save inserts one row per finalized record. Insert-only: finalizing again
// always produces a new row, never an update of a prior one.
func (r *ClientRepository) Save(rec dialog.Record) error {
	_, err := r.db.Exec(`
	    INSERT INTO clients
		(external_id, owner_chat_id, name, phone, package, price, due_date, server, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		uuid.New().String(),
		rec.OwnerID,
		rec.Name,
		rec.Phone,
		rec.Package,
		rec.Price,
		rec.DueDate,
		rec.Server,
		rec.Notes,
	)
	if err != nil {
		return fmt.Errorf("ClientRepository.Save: %w", err)
	}

	return nil
}

func (r *ClientRepository) ListByOwner(ownerChatID int64) ([]Client, error) {
	var clients []Client

	err := r.db.Select(&clients, `
	    SELECT * FROM clients
		WHERE owner_chat_id = $1
		ORDER BY due_date ASC, id ASC
	`, ownerChatID)

	if err != nil {
		return nil, fmt.Errorf("ClientRepository.ListByOwner: %w", err)
	}

	return clients, nil
}

func (r *ClientRepository) GetByID(clientID int64) (*Client, error) {
	var client Client

	err := r.db.Get(&client, `
	    SELECT * FROM clients
		WHERE id = $1
	`, clientID)

	if err != nil {
		return nil, fmt.Errorf("ClientRepository.GetByID: %w", err)
	}

	return pointer.To(client), nil
}

func (r *ClientRepository) CountByOwner(ownerChatID int64) (int, error) {
	var total int

	err := r.db.Get(&total, `
	    SELECT COUNT(*) FROM clients
		WHERE owner_chat_id = $1
	`, ownerChatID)

	if err != nil {
		return 0, fmt.Errorf("ClientRepository.CountByOwner: %w", err)
	}

	return total, nil
}

// Summary totals the owner's clients and their parseable prices. Custom
// free-text prices that don't parse are counted but excluded from revenue.
func (r *ClientRepository) Summary(ownerChatID int64) (*OwnerSummary, error) {
	clients, err := r.ListByOwner(ownerChatID)
	if err != nil {
		return nil, fmt.Errorf("ClientRepository.Summary: %w", err)
	}

	summary := OwnerSummary{Total: len(clients)}

	for _, client := range clients {
		if value, ok := parsePrice(client.Price); ok {
			summary.Revenue += value
		}
	}

	return pointer.To(summary), nil
}

func parsePrice(raw string) (float64, bool) {
	cleaned := strings.NewReplacer("R$", "", ",", ".", " ", "").Replace(raw)

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || value <= 0 {
		return 0, false
	}

	return value, true
}
