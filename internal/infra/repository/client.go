package repository

import (
	"context"
	"time"

	"hospedagem-api/internal/domain/client"
	"hospedagem-api/internal/infra"
	"hospedagem-api/internal/infra/db"

	"github.com/google/uuid"
)

type ClientRepository struct{}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

func (r *ClientRepository) Create(ctx context.Context, dbtx db.DBTX, entity *client.Client) (uuid.UUID, error) {
	const query = `
		INSERT INTO clients (id, name, document, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, query, entity.ID(), entity.Name(), entity.Document().Digits(), entity.Phone().Digits()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create client", err)
	}
	return id, nil
}

func (r *ClientRepository) Update(ctx context.Context, dbtx db.DBTX, entity *client.Client) error {
	const query = `
		UPDATE clients
		SET name = $2, phone = $3, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, entity.ID(), entity.Name(), entity.Phone().Digits())
	if err != nil {
		return infra.WrapRepoErr("failed to update client", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete client", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ClientRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*client.Client, error) {
	const query = `
		SELECT id, name, document, phone, created_at, updated_at
		FROM clients
		WHERE id = $1`

	var (
		clientID             uuid.UUID
		name, docStr, phone  string
		createdAt, updatedAt time.Time
	)
	err := dbtx.QueryRow(ctx, query, id).Scan(&clientID, &name, &docStr, &phone, &createdAt, &updatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client", err)
	}

	document, err := client.NewDocument(docStr)
	if err != nil {
		return nil, infra.WrapRepoErr("stored document is invalid", err)
	}
	phoneVO, err := client.NewPhone(phone)
	if err != nil {
		return nil, infra.WrapRepoErr("stored phone is invalid", err)
	}

	return client.ReconstructClient(clientID, name, document, phoneVO, createdAt, updatedAt), nil
}
