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

type repairRepository struct {
	db *pgxpool.Pool
}

func NewRepairRepository(db *pgxpool.Pool) repository.RepairRepository {
	return &repairRepository{db: db}
}

func (r *repairRepository) Create(ctx context.Context, repair *domain.Repair) error {
	query := `
		INSERT INTO repairs (id, vehicle_id, owner_id, repair_date, amount, tool_name, tool_image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	repair.ID = uuid.New()
	repair.CreatedAt = time.Now()
	repair.UpdatedAt = time.Now()

	_, err := r.db.Exec(ctx, query,
		repair.ID,
		repair.VehicleID,
		repair.OwnerID,
		repair.RepairDate,
		repair.Amount,
		repair.ToolName,
		repair.ToolImageURL,
		repair.CreatedAt,
		repair.UpdatedAt,
	)

	if err != nil {
		return err
	}

	return nil
}

func (r *repairRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Repair, error) {
	query := `
		SELECT id, vehicle_id, owner_id, repair_date, amount, tool_name, tool_image_url, created_at, updated_at
		FROM repairs
		WHERE id = $1
	`

	repair := &domain.Repair{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&repair.ID,
		&repair.VehicleID,
		&repair.OwnerID,
		&repair.RepairDate,
		&repair.Amount,
		&repair.ToolName,
		&repair.ToolImageURL,
		&repair.CreatedAt,
		&repair.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRepairNotFound
		}
		return nil, err
	}

	return repair, nil
}

func (r *repairRepository) GetByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*domain.Repair, error) {
	query := `
		SELECT id, vehicle_id, owner_id, repair_date, amount, tool_name, tool_image_url, created_at, updated_at
		FROM repairs
		WHERE vehicle_id = $1
		ORDER BY created_at DESC
	`

	return r.queryRepairs(ctx, query, vehicleID)
}

func (r *repairRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*domain.Repair, error) {
	query := `
		SELECT id, vehicle_id, owner_id, repair_date, amount, tool_name, tool_image_url, created_at, updated_at
		FROM repairs
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	return r.queryRepairs(ctx, query, ownerID)
}

func (r *repairRepository) Update(ctx context.Context, repair *domain.Repair) error {
	query := `
		UPDATE repairs
		SET repair_date = $2, amount = $3, tool_name = $4, tool_image_url = $5, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		repair.ID,
		repair.RepairDate,
		repair.Amount,
		repair.ToolName,
		repair.ToolImageURL,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRepairNotFound
	}

	return nil
}

func (r *repairRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM repairs WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRepairNotFound
	}

	return nil
}

func (r *repairRepository) queryRepairs(ctx context.Context, query string, arg interface{}) ([]*domain.Repair, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	repairs := make([]*domain.Repair, 0)
	for rows.Next() {
		repair := &domain.Repair{}
		err := rows.Scan(
			&repair.ID,
			&repair.VehicleID,
			&repair.OwnerID,
			&repair.RepairDate,
			&repair.Amount,
			&repair.ToolName,
			&repair.ToolImageURL,
			&repair.CreatedAt,
			&repair.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		repairs = append(repairs, repair)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return repairs, nil
}
