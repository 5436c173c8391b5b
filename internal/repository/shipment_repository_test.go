package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shippy/shipment-tracker/internal/model"
)

var shipmentCols = []string{
	"id", "tracking_number",
	"sender_name", "sender_address", "sender_city", "sender_zip_code", "sender_country",
	"receiver_name", "receiver_address", "receiver_city", "receiver_zip_code", "receiver_country",
	"package_weight", "package_type", "status", "estimated_delivery",
	"user_id", "name", "email", "created_at", "updated_at",
}

func shipmentRow(id, tracking, owner, status string, estimated *time.Time) *sqlmock.Rows {
	now := time.Now().UTC().Truncate(time.Second)
	var est any
	if estimated != nil {
		est = *estimated
	}
	return sqlmock.NewRows(shipmentCols).AddRow(
		id, tracking,
		"Alice", "1 Sender St", "Colombo", "00300", "LK",
		"Bob", "2 Receiver Rd", "Berlin", "10115", "DE",
		2.5, "parcel", status, est,
		owner, "Alice", "a@x.com", now, now,
	)
}

func TestShipmentRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewShipmentRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM shipments s JOIN users u ON (.+) WHERE s.id=").
		WithArgs("s1").
		WillReturnRows(shipmentRow("s1", "SHP-AAAA11112222", "u1", "pending", nil))

	got, err := repo.GetByID(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	assert.Equal(t, model.StatusPending, got.Status)
	assert.Nil(t, got.EstimatedDelivery)
	// Owner summary is assembled from the joined columns.
	assert.Equal(t, model.OwnerSummary{ID: "u1", Name: "Alice", Email: "a@x.com"}, got.User)
}

func TestShipmentRepoGetByTrackingNumber_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewShipmentRepo(db)

	mock.ExpectQuery("SELECT (.+) WHERE s.tracking_number=").
		WithArgs("SHP-MISSING00000").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByTrackingNumber(context.Background(), "SHP-MISSING00000")
	assert.ErrorIs(t, err, ErrShipmentNotFound)
}

func TestShipmentRepoListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewShipmentRepo(db)

	rows := shipmentRow("s2", "SHP-BBBB11112222", "u1", "delivered", nil)
	rows = rows.AddRow(
		"s1", "SHP-AAAA11112222",
		"Alice", "1 Sender St", "Colombo", "00300", "LK",
		"Bob", "2 Receiver Rd", "Berlin", "10115", "DE",
		2.5, "parcel", "pending", nil,
		"u1", "Alice", "a@x.com",
		time.Now().UTC().Add(-time.Hour), time.Now().UTC().Add(-time.Hour),
	)
	mock.ExpectQuery("SELECT (.+) WHERE s.user_id=(.+) ORDER BY s.created_at DESC").
		WithArgs("u1").
		WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "s2", got[0].ID)
	assert.Equal(t, "s1", got[1].ID)
}

func TestShipmentRepoDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewShipmentRepo(db)

	mock.ExpectExec("DELETE FROM shipments WHERE id=").
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM shipments WHERE id=").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), "s1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), ErrShipmentNotFound)
}

func TestShipmentRepoCountByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewShipmentRepo(db)

	// out_for_delivery contributes to Total only.
	rows := sqlmock.NewRows([]string{"status", "COUNT(*)"}).
		AddRow("pending", 2).
		AddRow("out_for_delivery", 3).
		AddRow("delivered", 1)
	mock.ExpectQuery("SELECT status, COUNT\\(\\*\\) FROM shipments WHERE user_id=(.+) GROUP BY status").
		WithArgs("u1").
		WillReturnRows(rows)

	stats, err := repo.CountByStatus(context.Background(), "u1", false)
	require.NoError(t, err)
	assert.Equal(t, model.ShipmentStats{Total: 6, Pending: 2, Delivered: 1}, stats)
}

func TestShipmentRepoCountByStatus_All(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewShipmentRepo(db)

	rows := sqlmock.NewRows([]string{"status", "COUNT(*)"}).
		AddRow("cancelled", 4)
	mock.ExpectQuery("SELECT status, COUNT\\(\\*\\) FROM shipments GROUP BY status").
		WillReturnRows(rows)

	stats, err := repo.CountByStatus(context.Background(), "", true)
	require.NoError(t, err)
	assert.Equal(t, model.ShipmentStats{Total: 4, Cancelled: 4}, stats)
}

func TestShipmentRepoUpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewShipmentRepo(db)

	mock.ExpectExec("UPDATE shipments SET status=(.+) WHERE id=").
		WithArgs("delivered", sqlmock.AnyArg(), "s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) WHERE s.id=").
		WithArgs("s1").
		WillReturnRows(shipmentRow("s1", "SHP-AAAA11112222", "u1", "delivered", nil))

	got, err := repo.UpdateStatus(context.Background(), "s1", model.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, model.StatusDelivered, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
