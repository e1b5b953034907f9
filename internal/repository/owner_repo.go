package repository

import (
	"context"

	"ferapp_backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type OwnerRepository struct {
	db *pgxpool.Pool
}

func NewOwnerRepository(db *pgxpool.Pool) *OwnerRepository {
	return &OwnerRepository{db: db}
}

func (r *OwnerRepository) GetByGoogleSub(ctx context.Context, sub string) (*domain.Owner, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, google_sub, COALESCE(email, ''), COALESCE(name, ''), created_at
		 FROM owners
		 WHERE google_sub = $1`,
		sub,
	)

	var o domain.Owner
	if err := row.Scan(&o.ID, &o.GoogleSub, &o.Email, &o.Name, &o.CreatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OwnerRepository) GetByID(ctx context.Context, id int64) (*domain.Owner, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, google_sub, COALESCE(email, ''), COALESCE(name, ''), created_at
		 FROM owners
		 WHERE id = $1`,
		id,
	)

	var o domain.Owner
	if err := row.Scan(&o.ID, &o.GoogleSub, &o.Email, &o.Name, &o.CreatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OwnerRepository) Create(ctx context.Context, o *domain.Owner) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO owners (google_sub, email, name)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		o.GoogleSub, o.Email, o.Name,
	).Scan(&o.ID, &o.CreatedAt)
}

// UpdateProfile refreshes the display fields Google reports on sign-in.
func (r *OwnerRepository) UpdateProfile(ctx context.Context, id int64, email, name string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE owners SET email = $2, name = $3 WHERE id = $1`,
		id, email, name,
	)
	return err
}
