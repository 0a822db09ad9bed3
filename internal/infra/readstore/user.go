package readstore

import (
	"context"

	"hospedagem-api/internal/infra"
	"hospedagem-api/internal/infra/db"
	"hospedagem-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, name, login, role, is_active, last_login
		FROM users
		WHERE id = $1`

	view := &queries.AuthorizedUserView{}
	err := r.db.QueryRow(ctx, query, id).Scan(&view.ID, &view.Name, &view.Login, &view.Role, &view.IsActive, &view.LastLogin)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return view, nil
}

func (r *UserReadStore) FindByLogin(ctx context.Context, login string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, name, login, role, is_active, last_login, password_hash
		FROM users
		WHERE login = $1`

	view := &queries.AuthorizedUserView{}
	var passwordHash string
	err := r.db.QueryRow(ctx, query, login).Scan(&view.ID, &view.Name, &view.Login, &view.Role, &view.IsActive, &view.LastLogin, &passwordHash)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by login", err)
	}
	return view, passwordHash, nil
}
