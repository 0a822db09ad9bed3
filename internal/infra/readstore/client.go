package readstore

import (
	"context"
	"time"

	"hospedagem-api/internal/domain/client"
	"hospedagem-api/internal/infra"
	"hospedagem-api/internal/infra/db"
	"hospedagem-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ClientReadStore struct {
	db db.DBTX
}

func NewClientReadStore(dbtx db.DBTX) *ClientReadStore {
	return &ClientReadStore{db: dbtx}
}

func (r *ClientReadStore) FindAll(ctx context.Context) ([]*queries.ClientView, error) {
	const query = `
		SELECT id, name, document, phone, created_at, updated_at
		FROM clients
		ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients", err)
	}
	defer rows.Close()

	var views []*queries.ClientView
	for rows.Next() {
		view, scanErr := scanClientView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan client", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read clients", err)
	}
	return views, nil
}

func (r *ClientReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ClientView, error) {
	const query = `
		SELECT id, name, document, phone, created_at, updated_at
		FROM clients
		WHERE id = $1`

	view, err := scanClientView(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client by ID", err)
	}
	return view, nil
}

func (r *ClientReadStore) FindByDocument(ctx context.Context, documentDigits string) (*queries.ClientView, error) {
	const query = `
		SELECT id, name, document, phone, created_at, updated_at
		FROM clients
		WHERE document = $1`

	view, err := scanClientView(r.db.QueryRow(ctx, query, documentDigits))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client by document", err)
	}
	return view, nil
}

func scanClientView(row pgx.Row) (*queries.ClientView, error) {
	var (
		id                   uuid.UUID
		name, docStr, phone  string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &docStr, &phone, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return &queries.ClientView{
		ID:        id,
		Name:      name,
		Document:  formatDocument(docStr),
		Phone:     formatPhone(phone),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// Stored values are bare digits; display formatting happens here, on the way
// out. Values that fail re-validation are shown raw.
func formatDocument(digits string) string {
	document, err := client.NewDocument(digits)
	if err != nil {
		return digits
	}
	return document.Formatted()
}

func formatPhone(digits string) string {
	phone, err := client.NewPhone(digits)
	if err != nil {
		return digits
	}
	return phone.Formatted()
}
