package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/shippy/shipment-tracker/internal/model"
)

// shipmentColumns joins shipments with their owning user so every read
// carries the owner summary (id, name, email) in one round trip.
const shipmentColumns = `s.id, s.tracking_number,
 s.sender_name, s.sender_address, s.sender_city, s.sender_zip_code, s.sender_country,
 s.receiver_name, s.receiver_address, s.receiver_city, s.receiver_zip_code, s.receiver_country,
 s.package_weight, s.package_type, s.status, s.estimated_delivery,
 s.user_id, u.name, u.email, s.created_at, s.updated_at`

const shipmentFrom = " FROM shipments s JOIN users u ON u.id = s.user_id "

type ShipmentRepo struct{ DB *sql.DB }

func NewShipmentRepo(db *sql.DB) *ShipmentRepo { return &ShipmentRepo{DB: db} }

// Create inserts the shipment and reads the row back (joined with its
// owner) so timestamps and the owner summary come from the store.
func (r *ShipmentRepo) Create(ctx context.Context, s *model.Shipment) error {
	now := time.Now().UTC().Truncate(time.Second)
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO shipments
		 (id, tracking_number,
		  sender_name, sender_address, sender_city, sender_zip_code, sender_country,
		  receiver_name, receiver_address, receiver_city, receiver_zip_code, receiver_country,
		  package_weight, package_type, status, estimated_delivery, user_id, created_at, updated_at)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		s.ID, s.TrackingNumber,
		s.SenderName, s.SenderAddress, s.SenderCity, s.SenderZipCode, s.SenderCountry,
		s.ReceiverName, s.ReceiverAddress, s.ReceiverCity, s.ReceiverZipCode, s.ReceiverCountry,
		s.PackageWeight, s.PackageType, string(s.Status), s.EstimatedDelivery, s.UserID, now, now)
	if err != nil {
		return err
	}
	created, err := r.GetByID(ctx, s.ID)
	if err != nil {
		return err
	}
	*s = created
	return nil
}

// GetByID fetches one shipment with its owner summary.
func (r *ShipmentRepo) GetByID(ctx context.Context, id string) (model.Shipment, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+shipmentColumns+shipmentFrom+"WHERE s.id=? LIMIT 1", id)
	return scanShipment(row)
}

// GetByTrackingNumber fetches one shipment by its public tracking key.
func (r *ShipmentRepo) GetByTrackingNumber(ctx context.Context, trackingNumber string) (model.Shipment, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+shipmentColumns+shipmentFrom+"WHERE s.tracking_number=? LIMIT 1", trackingNumber)
	return scanShipment(row)
}

// ListByOwner returns the owner's shipments, most recent first.
func (r *ShipmentRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Shipment, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+shipmentColumns+shipmentFrom+"WHERE s.user_id=? ORDER BY s.created_at DESC", ownerID)
	if err != nil {
		return nil, err
	}
	return collectShipments(rows)
}

// ListAll returns every shipment, most recent first.
func (r *ShipmentRepo) ListAll(ctx context.Context) ([]model.Shipment, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+shipmentColumns+shipmentFrom+"ORDER BY s.created_at DESC")
	if err != nil {
		return nil, err
	}
	return collectShipments(rows)
}

// UpdateStatus sets the status and refreshes updated_at, then returns the
// updated record. Enum membership is validated by the service; the store
// accepts any of the five values from any prior status.
func (r *ShipmentRepo) UpdateStatus(ctx context.Context, id string, status model.ShipmentStatus) (model.Shipment, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE shipments SET status=?, updated_at=? WHERE id=?",
		string(status), time.Now().UTC().Truncate(time.Second), id)
	if err != nil {
		return model.Shipment{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Distinguish a missing row from a same-status no-op.
		if _, err := r.GetByID(ctx, id); err != nil {
			return model.Shipment{}, err
		}
	}
	return r.GetByID(ctx, id)
}

// Delete permanently removes the shipment.
func (r *ShipmentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM shipments WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrShipmentNotFound
	}
	return nil
}

// CountByStatus aggregates shipment counts grouped by status. With all set
// the whole table is counted, otherwise only the owner's rows. The
// out_for_delivery bucket contributes to Total but has no dedicated field.
func (r *ShipmentRepo) CountByStatus(ctx context.Context, ownerID string, all bool) (model.ShipmentStats, error) {
	q := "SELECT status, COUNT(*) FROM shipments"
	var args []any
	if !all {
		q += " WHERE user_id=?"
		args = append(args, ownerID)
	}
	q += " GROUP BY status"

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return model.ShipmentStats{}, err
	}
	defer rows.Close()

	var stats model.ShipmentStats
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return model.ShipmentStats{}, err
		}
		stats.Total += n
		switch model.ShipmentStatus(status) {
		case model.StatusPending:
			stats.Pending = n
		case model.StatusInTransit:
			stats.InTransit = n
		case model.StatusDelivered:
			stats.Delivered = n
		case model.StatusCancelled:
			stats.Cancelled = n
		}
	}
	return stats, rows.Err()
}

func scanShipment(row *sql.Row) (model.Shipment, error) {
	var s model.Shipment
	var status string
	var estimated sql.NullTime
	err := row.Scan(&s.ID, &s.TrackingNumber,
		&s.SenderName, &s.SenderAddress, &s.SenderCity, &s.SenderZipCode, &s.SenderCountry,
		&s.ReceiverName, &s.ReceiverAddress, &s.ReceiverCity, &s.ReceiverZipCode, &s.ReceiverCountry,
		&s.PackageWeight, &s.PackageType, &status, &estimated,
		&s.UserID, &s.User.Name, &s.User.Email, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Shipment{}, ErrShipmentNotFound
	}
	if err != nil {
		return model.Shipment{}, err
	}
	s.Status = model.ShipmentStatus(status)
	if estimated.Valid {
		t := estimated.Time
		s.EstimatedDelivery = &t
	}
	s.User.ID = s.UserID
	return s, nil
}

func collectShipments(rows *sql.Rows) ([]model.Shipment, error) {
	defer rows.Close()
	out := []model.Shipment{}
	for rows.Next() {
		var s model.Shipment
		var status string
		var estimated sql.NullTime
		err := rows.Scan(&s.ID, &s.TrackingNumber,
			&s.SenderName, &s.SenderAddress, &s.SenderCity, &s.SenderZipCode, &s.SenderCountry,
			&s.ReceiverName, &s.ReceiverAddress, &s.ReceiverCity, &s.ReceiverZipCode, &s.ReceiverCountry,
			&s.PackageWeight, &s.PackageType, &status, &estimated,
			&s.UserID, &s.User.Name, &s.User.Email, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		s.Status = model.ShipmentStatus(status)
		if estimated.Valid {
			t := estimated.Time
			s.EstimatedDelivery = &t
		}
		s.User.ID = s.UserID
		out = append(out, s)
	}
	return out, rows.Err()
}
