package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/fleettrack/fleettrack/internal/domain"
	"github.com/fleettrack/fleettrack/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type signatureRepository struct {
	db *pgxpool.Pool
}

func NewSignatureRepository(db *pgxpool.Pool) repository.SignatureRepository {
	return &signatureRepository{db: db}
}

func (r *signatureRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.Signature, error) {
	query := `
		SELECT id, owner_id, name, signature_url, created_at, updated_at
		FROM signatures
		WHERE owner_id = $1
	`

	signature := &domain.Signature{}
	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&signature.ID,
		&signature.OwnerID,
		&signature.Name,
		&signature.SignatureURL,
		&signature.CreatedAt,
		&signature.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSignatureNotFound
		}
		return nil, err
	}

	return signature, nil
}

// Upsert пишет подпись через ON CONFLICT по owner_id: уникальный индекс
// гарантирует не больше одной строки на пользователя даже при гонке
// двух одновременных сохранений.
func (r *signatureRepository) Upsert(ctx context.Context, signature *domain.Signature) error {
	query := `
		INSERT INTO signatures (id, owner_id, name, signature_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (owner_id) DO UPDATE
		SET name = EXCLUDED.name, signature_url = EXCLUDED.signature_url, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`

	now := time.Now()
	err := r.db.QueryRow(ctx, query,
		uuid.New(),
		signature.OwnerID,
		signature.Name,
		signature.SignatureURL,
		now,
		now,
	).Scan(&signature.ID, &signature.CreatedAt)

	if err != nil {
		return err
	}

	signature.UpdatedAt = now
	return nil
}

func (r *signatureRepository) DeleteByOwnerID(ctx context.Context, ownerID uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM signatures WHERE owner_id = $1`, ownerID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrSignatureNotFound
	}

	return nil
}
