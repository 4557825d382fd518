package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fleettrack/fleettrack/internal/domain"
	"github.com/fleettrack/fleettrack/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type vehicleRepository struct {
	db *pgxpool.Pool
}

func NewVehicleRepository(db *pgxpool.Pool) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, owner_id, name, owner_name, vehicle_number,
			image_url, pollution_cert_url, registration_cert_url,
			driver, tyres, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	vehicle.ID = uuid.New()
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = time.Now()
	if vehicle.Tyres == nil {
		vehicle.Tyres = []domain.Tyre{}
	}

	driverJSON, tyresJSON, err := marshalEmbedded(vehicle.Driver, vehicle.Tyres)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, query,
		vehicle.ID,
		vehicle.OwnerID,
		vehicle.Name,
		vehicle.OwnerName,
		vehicle.VehicleNumber,
		vehicle.ImageURL,
		vehicle.PollutionCertURL,
		vehicle.RegistrationCertURL,
		driverJSON,
		tyresJSON,
		vehicle.CreatedAt,
		vehicle.UpdatedAt,
	)

	if err != nil {
		return err
	}

	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	query := `
		SELECT id, owner_id, name, owner_name, vehicle_number,
			image_url, pollution_cert_url, registration_cert_url,
			driver, tyres, created_at, updated_at
		FROM vehicles
		WHERE id = $1
	`

	vehicle, err := scanVehicle(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, err
	}

	return vehicle, nil
}

func (r *vehicleRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*domain.Vehicle, error) {
	query := `
		SELECT id, owner_id, name, owner_name, vehicle_number,
			image_url, pollution_cert_url, registration_cert_url,
			driver, tyres, created_at, updated_at
		FROM vehicles
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]*domain.Vehicle, 0)
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `
		UPDATE vehicles
		SET name = $2, owner_name = $3, vehicle_number = $4,
			image_url = $5, pollution_cert_url = $6, registration_cert_url = $7,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		vehicle.ID,
		vehicle.Name,
		vehicle.OwnerName,
		vehicle.VehicleNumber,
		vehicle.ImageURL,
		vehicle.PollutionCertURL,
		vehicle.RegistrationCertURL,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrVehicleNotFound
	}

	return nil
}

// Delete удаляет машину и все её ремонты в одной транзакции:
// осиротевших записей о ремонтах не остается.
func (r *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM repairs WHERE vehicle_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrVehicleNotFound
	}

	return tx.Commit(ctx)
}

func (r *vehicleRepository) AssignDriver(ctx context.Context, vehicleID uuid.UUID, driver *domain.Driver) error {
	return r.mutateEmbedded(ctx, vehicleID, func(doc *embeddedDoc) error {
		assigned := *driver
		assigned.ItemsGiven = []domain.DriverItem{}
		doc.Driver = &assigned
		return nil
	})
}

func (r *vehicleRepository) UpdateDriverProfile(ctx context.Context, vehicleID uuid.UUID, driver *domain.Driver) error {
	return r.mutateEmbedded(ctx, vehicleID, func(doc *embeddedDoc) error {
		updated := *driver
		// Анкета меняется, выданные вещи остаются как были
		if doc.Driver != nil {
			updated.ItemsGiven = doc.Driver.ItemsGiven
		} else {
			updated.ItemsGiven = []domain.DriverItem{}
		}
		doc.Driver = &updated
		return nil
	})
}

func (r *vehicleRepository) RemoveDriver(ctx context.Context, vehicleID uuid.UUID) error {
	return r.mutateEmbedded(ctx, vehicleID, func(doc *embeddedDoc) error {
		doc.Driver = nil
		return nil
	})
}

func (r *vehicleRepository) AddDriverItem(ctx context.Context, vehicleID uuid.UUID, item domain.DriverItem) error {
	return r.mutateEmbedded(ctx, vehicleID, func(doc *embeddedDoc) error {
		if doc.Driver == nil {
			return domain.ErrNoDriverAssigned
		}
		doc.Driver.ItemsGiven = append(doc.Driver.ItemsGiven, item)
		return nil
	})
}

func (r *vehicleRepository) UpdateDriverItem(ctx context.Context, vehicleID uuid.UUID, itemID string, item domain.DriverItem) error {
	return r.mutateEmbedded(ctx, vehicleID, func(doc *embeddedDoc) error {
		if doc.Driver == nil {
			return domain.ErrNoDriverAssigned
		}
		idx := doc.Driver.FindItem(itemID)
		if idx < 0 {
			return domain.ErrDriverItemNotFound
		}
		item.ID = itemID
		doc.Driver.ItemsGiven[idx] = item
		return nil
	})
}

func (r *vehicleRepository) RemoveDriverItem(ctx context.Context, vehicleID uuid.UUID, itemID string) error {
	return r.mutateEmbedded(ctx, vehicleID, func(doc *embeddedDoc) error {
		if doc.Driver == nil {
			return domain.ErrNoDriverAssigned
		}
		idx := doc.Driver.FindItem(itemID)
		if idx < 0 {
			return domain.ErrDriverItemNotFound
		}
		doc.Driver.ItemsGiven = append(doc.Driver.ItemsGiven[:idx], doc.Driver.ItemsGiven[idx+1:]...)
		return nil
	})
}

func (r *vehicleRepository) AddTyre(ctx context.Context, vehicleID uuid.UUID, tyre domain.Tyre) error {
	return r.mutateEmbedded(ctx, vehicleID, func(doc *embeddedDoc) error {
		doc.Tyres = append(doc.Tyres, tyre)
		return nil
	})
}

func (r *vehicleRepository) UpdateTyre(ctx context.Context, vehicleID uuid.UUID, tyreID string, tyre domain.Tyre) error {
	return r.mutateEmbedded(ctx, vehicleID, func(doc *embeddedDoc) error {
		idx := findTyre(doc.Tyres, tyreID)
		if idx < 0 {
			return domain.ErrTyreNotFound
		}
		tyre.ID = tyreID
		doc.Tyres[idx] = tyre
		return nil
	})
}

func (r *vehicleRepository) RemoveTyre(ctx context.Context, vehicleID uuid.UUID, tyreID string) error {
	return r.mutateEmbedded(ctx, vehicleID, func(doc *embeddedDoc) error {
		idx := findTyre(doc.Tyres, tyreID)
		if idx < 0 {
			return domain.ErrTyreNotFound
		}
		doc.Tyres = append(doc.Tyres[:idx], doc.Tyres[idx+1:]...)
		return nil
	})
}

// embeddedDoc - изменяемая часть документа машины: водитель и колеса
type embeddedDoc struct {
	Driver *domain.Driver
	Tyres  []domain.Tyre
}

// mutateEmbedded применяет fn к встроенным документам машины под блокировкой
// строки. SELECT ... FOR UPDATE сериализует конкурирующие изменения:
// вторая транзакция ждет первую и видит уже записанный ею документ.
func (r *vehicleRepository) mutateEmbedded(ctx context.Context, vehicleID uuid.UUID, fn func(doc *embeddedDoc) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var driverJSON, tyresJSON []byte
	err = tx.QueryRow(ctx,
		`SELECT driver, tyres FROM vehicles WHERE id = $1 FOR UPDATE`,
		vehicleID,
	).Scan(&driverJSON, &tyresJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrVehicleNotFound
		}
		return err
	}

	doc := &embeddedDoc{Tyres: []domain.Tyre{}}
	if len(driverJSON) > 0 {
		doc.Driver = &domain.Driver{}
		if err := json.Unmarshal(driverJSON, doc.Driver); err != nil {
			return fmt.Errorf("failed to unmarshal driver: %w", err)
		}
	}
	if len(tyresJSON) > 0 {
		if err := json.Unmarshal(tyresJSON, &doc.Tyres); err != nil {
			return fmt.Errorf("failed to unmarshal tyres: %w", err)
		}
	}

	if err := fn(doc); err != nil {
		return err
	}

	newDriver, newTyres, err := marshalEmbedded(doc.Driver, doc.Tyres)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE vehicles SET driver = $2, tyres = $3, updated_at = NOW() WHERE id = $1`,
		vehicleID, newDriver, newTyres,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// marshalEmbedded кодирует водителя и колеса для записи в jsonb колонки.
// Отсутствующий водитель хранится как SQL NULL, а не как jsonb 'null'.
func marshalEmbedded(driver *domain.Driver, tyres []domain.Tyre) ([]byte, []byte, error) {
	var driverJSON []byte
	if driver != nil {
		data, err := json.Marshal(driver)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal driver: %w", err)
		}
		driverJSON = data
	}

	if tyres == nil {
		tyres = []domain.Tyre{}
	}
	tyresJSON, err := json.Marshal(tyres)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal tyres: %w", err)
	}

	return driverJSON, tyresJSON, nil
}

func findTyre(tyres []domain.Tyre, tyreID string) int {
	for i := range tyres {
		if tyres[i].ID == tyreID {
			return i
		}
	}
	return -1
}

// scanVehicle читает строку машины вместе с jsonb колонками
func scanVehicle(row pgx.Row) (*domain.Vehicle, error) {
	vehicle := &domain.Vehicle{}
	var driverJSON, tyresJSON []byte

	err := row.Scan(
		&vehicle.ID,
		&vehicle.OwnerID,
		&vehicle.Name,
		&vehicle.OwnerName,
		&vehicle.VehicleNumber,
		&vehicle.ImageURL,
		&vehicle.PollutionCertURL,
		&vehicle.RegistrationCertURL,
		&driverJSON,
		&tyresJSON,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(driverJSON) > 0 {
		vehicle.Driver = &domain.Driver{}
		if err := json.Unmarshal(driverJSON, vehicle.Driver); err != nil {
			return nil, fmt.Errorf("failed to unmarshal driver: %w", err)
		}
	}

	vehicle.Tyres = []domain.Tyre{}
	if len(tyresJSON) > 0 {
		if err := json.Unmarshal(tyresJSON, &vehicle.Tyres); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tyres: %w", err)
		}
	}

	return vehicle, nil
}
