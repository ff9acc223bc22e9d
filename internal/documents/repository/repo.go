package repository

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/specforge-io/specforge-backend/internal/documents/domain"
)

// Repo provides persistence for generated documents, keyed by the owner's
// firebase uid.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func newPublicID() (string, error) {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "doc_" + hex.EncodeToString(b), nil
}

// Create inserts a new document for the owner.
func (r *Repo) Create(ctx context.Context, ownerUID, projectName, title, content string) (*domain.Document, error) {
	if ownerUID == "" {
		return nil, fmt.Errorf("owner uid required")
	}
	if title == "" {
		title = projectName
	}

	for i := 0; i < 5; i++ {
		publicID, err := newPublicID()
		if err != nil {
			return nil, err
		}

		const q = `
insert into documents (public_id, owner_uid, project_name, title, content)
values ($1, $2, $3, $4, $5)
returning public_id, project_name, title, content, created_at, updated_at;
`
		var d domain.Document
		err = r.db.QueryRow(ctx, q, publicID, ownerUID, projectName, title, content).
			Scan(&d.PublicID, &d.ProjectName, &d.Title, &d.Content, &d.CreatedAt, &d.UpdatedAt)
		if err == nil {
			return &d, nil
		}

		// unique violation on public_id → retry
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("failed to generate unique document id")
}

// Get returns one document owned by the given user.
func (r *Repo) Get(ctx context.Context, ownerUID, publicID string) (*domain.Document, error) {
	const q = `
select public_id, project_name, title, content, created_at, updated_at
from documents
where owner_uid = $1 and public_id = $2 and deleted_at is null;
`
	var d domain.Document
	err := r.db.QueryRow(ctx, q, ownerUID, publicID).
		Scan(&d.PublicID, &d.ProjectName, &d.Title, &d.Content, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// List returns the owner's documents, newest first.
func (r *Repo) List(ctx context.Context, ownerUID string) ([]domain.Document, error) {
	const q = `
select public_id, project_name, title, content, created_at, updated_at
from documents
where owner_uid = $1 and deleted_at is null
order by created_at desc;
`
	rows, err := r.db.Query(ctx, q, ownerUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Document, 0, 16)
	for rows.Next() {
		var d domain.Document
		if err := rows.Scan(&d.PublicID, &d.ProjectName, &d.Title, &d.Content, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Update applies a partial update; nil fields are left unchanged.
func (r *Repo) Update(ctx context.Context, ownerUID, publicID string, title, content *string) (*domain.Document, error) {
	const q = `
update documents
set title = coalesce($3, title),
    content = coalesce($4, content),
    updated_at = now()
where owner_uid = $1 and public_id = $2 and deleted_at is null
returning public_id, project_name, title, content, created_at, updated_at;
`
	var d domain.Document
	err := r.db.QueryRow(ctx, q, ownerUID, publicID, title, content).
		Scan(&d.PublicID, &d.ProjectName, &d.Title, &d.Content, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// SoftDelete marks a document as deleted.
func (r *Repo) SoftDelete(ctx context.Context, ownerUID, publicID string) (bool, error) {
	const q = `
update documents
set deleted_at = now(), updated_at = now()
where owner_uid = $1 and public_id = $2 and deleted_at is null;
`
	ct, err := r.db.Exec(ctx, q, ownerUID, publicID)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}
