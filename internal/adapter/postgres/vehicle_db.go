package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
)

type VehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{
		db,
	}
}

func (r *VehicleRepository) ListVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	query := `SELECT chassis_no, reg_no, vehicle_model, received_date, city, batch, status
              FROM vehicles ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := []*domain.Vehicle{}
	for rows.Next() {
		vehicle := &domain.Vehicle{}
		err := rows.Scan(
			&vehicle.ChassisNo,
			&vehicle.RegNo,
			&vehicle.VehicleModel,
			&vehicle.ReceivedDate,
			&vehicle.City,
			&vehicle.Batch,
			&vehicle.Status,
		)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// ReplaceVehicles swaps the whole inventory in one transaction.
func (r *VehicleRepository) ReplaceVehicles(ctx context.Context, vehicles []*domain.Vehicle) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM vehicles`); err != nil {
		return fmt.Errorf("error clearing vehicles: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO vehicles (position, chassis_no, reg_no, vehicle_model, received_date, city, batch, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, v := range vehicles {
		_, err := stmt.ExecContext(ctx, i, v.ChassisNo, v.RegNo, v.VehicleModel, v.ReceivedDate, v.City, v.Batch, v.Status)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				switch pqErr.Code {
				case "23505":
					return fmt.Errorf("duplicate chassis number %s", v.ChassisNo)
				case "23502":
					return fmt.Errorf("required field is missing")
				}
			}
			return fmt.Errorf("error inserting vehicle %s: %w", v.ChassisNo, err)
		}
	}

	return tx.Commit()
}

func (r *VehicleRepository) UpdateVehicleStatus(ctx context.Context, chassisNo, status string) (*domain.Vehicle, error) {
	query := `UPDATE vehicles
		SET
			status = $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE upper(chassis_no) = upper($2)
		RETURNING chassis_no, reg_no, vehicle_model, received_date, city, batch, status`

	vehicle := &domain.Vehicle{}
	err := r.db.QueryRowContext(ctx, query, status, chassisNo).Scan(
		&vehicle.ChassisNo,
		&vehicle.RegNo,
		&vehicle.VehicleModel,
		&vehicle.ReceivedDate,
		&vehicle.City,
		&vehicle.Batch,
		&vehicle.Status,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("vehicle %s: %w", chassisNo, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("error updating vehicle: %w", err)
	}
	return vehicle, nil
}
