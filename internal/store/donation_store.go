package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/TECH-MENTORING-EU/FoodRescue/internal/db"
	"github.com/TECH-MENTORING-EU/FoodRescue/internal/domain"
)

// DonationStore is a stateless gateway over the FoodDonations table. Every
// operation acquires its own connection from the factory and releases it on
// all exit paths; rows are never cached between calls.
type DonationStore struct {
	factory *db.Factory
}

func NewDonationStore(factory *db.Factory) *DonationStore {
	return &DonationStore{factory: factory}
}

const donationColumns = "Id, DonorName, FoodType, Quantity, Unit, DonationDate, PickupLocation, IsPickedUp"

func (s *DonationStore) GetAll(ctx context.Context) ([]*domain.FoodDonation, error) {
	conn, err := s.factory.CreateConnection()
	if err != nil {
		return nil, err
	}
	defer closeConn(conn)

	rows, err := conn.QueryContext(ctx, `
		SELECT `+donationColumns+` FROM FoodDonations
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	var donations []*domain.FoodDonation
	for rows.Next() {
		d := &domain.FoodDonation{}
		if err := scanDonation(rows, d); err != nil {
			return nil, fmt.Errorf("failed to scan donation: %w", err)
		}
		donations = append(donations, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating donations: %w", err)
	}

	return donations, nil
}

// GetByID returns (nil, nil) when no donation has the given id; absence is
// a normal outcome, not a failure.
func (s *DonationStore) GetByID(ctx context.Context, id int64) (*domain.FoodDonation, error) {
	conn, err := s.factory.CreateConnection()
	if err != nil {
		return nil, err
	}
	defer closeConn(conn)

	d := &domain.FoodDonation{}
	err = conn.QueryRowContext(ctx, `
		SELECT `+donationColumns+` FROM FoodDonations WHERE Id = ?
	`, id).Scan(&d.ID, &d.DonorName, &d.FoodType, &d.Quantity, &d.Unit, &d.DonationDate, &d.PickupLocation, &d.IsPickedUp)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get donation: %w", err)
	}

	return d, nil
}

// Create inserts a new row and returns the store-assigned id. Any id on
// the incoming donation is ignored; only the database assigns identity.
func (s *DonationStore) Create(ctx context.Context, d *domain.FoodDonation) (int64, error) {
	conn, err := s.factory.CreateConnection()
	if err != nil {
		return 0, err
	}
	defer closeConn(conn)

	result, err := conn.ExecContext(ctx, `
		INSERT INTO FoodDonations (DonorName, FoodType, Quantity, Unit, DonationDate, PickupLocation, IsPickedUp)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, d.DonorName, d.FoodType, d.Quantity, d.Unit, d.DonationDate, d.PickupLocation, d.IsPickedUp)
	if err != nil {
		return 0, fmt.Errorf("failed to create donation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return id, nil
}

// Update replaces every non-key column of the row identified by d.ID. A
// missing id is no effect, reported as false, not an error.
func (s *DonationStore) Update(ctx context.Context, d *domain.FoodDonation) (bool, error) {
	conn, err := s.factory.CreateConnection()
	if err != nil {
		return false, err
	}
	defer closeConn(conn)

	result, err := conn.ExecContext(ctx, `
		UPDATE FoodDonations
		SET DonorName = ?, FoodType = ?, Quantity = ?, Unit = ?, DonationDate = ?, PickupLocation = ?, IsPickedUp = ?
		WHERE Id = ?
	`, d.DonorName, d.FoodType, d.Quantity, d.Unit, d.DonationDate, d.PickupLocation, d.IsPickedUp, d.ID)
	if err != nil {
		return false, fmt.Errorf("failed to update donation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected > 0, nil
}

// Delete removes the row by id. Hard delete; same affected-row semantics
// as Update.
func (s *DonationStore) Delete(ctx context.Context, id int64) (bool, error) {
	conn, err := s.factory.CreateConnection()
	if err != nil {
		return false, err
	}
	defer closeConn(conn)

	result, err := conn.ExecContext(ctx, `
		DELETE FROM FoodDonations WHERE Id = ?
	`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete donation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected > 0, nil
}

func scanDonation(rows *sql.Rows, d *domain.FoodDonation) error {
	return rows.Scan(&d.ID, &d.DonorName, &d.FoodType, &d.Quantity, &d.Unit, &d.DonationDate, &d.PickupLocation, &d.IsPickedUp)
}

func closeConn(conn *sql.DB) {
	if err := conn.Close(); err != nil {
		slog.Error("failed to close connection", "error", err)
	}
}
