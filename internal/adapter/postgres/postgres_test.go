package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/domain"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vehicleColumns = []string{"chassis_no", "reg_no", "vehicle_model", "received_date", "city", "batch", "status"}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestVehicleRepository_ListVehicles(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVehicleRepository(db)

	rows := sqlmock.NewRows(vehicleColumns).
		AddRow("MD9HAPXF4GR710037", "KA01EV1234", "Hero Electric Optima", "22-Nov-24", "BLR", "Batch-1", "Received").
		AddRow("MD9HAPXF4GR710038", "KA01EV1235", "Ather 450X", "23-Nov-24", "BLR", "Batch-1", "In Service")
	mock.ExpectQuery(regexp.QuoteMeta("FROM vehicles ORDER BY position")).WillReturnRows(rows)

	vehicles, err := repo.ListVehicles(context.Background())
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
	assert.Equal(t, "KA01EV1235", vehicles[1].RegNo)
	assert.Equal(t, "In Service", vehicles[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRepository_ReplaceVehicles(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVehicleRepository(db)
	vehicles := domain.SampleVehicles()[:2]

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM vehicles")).WillReturnResult(sqlmock.NewResult(0, 5))
	prep := mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO vehicles"))
	for i, v := range vehicles {
		prep.ExpectExec().
			WithArgs(i, v.ChassisNo, v.RegNo, v.VehicleModel, v.ReceivedDate, v.City, v.Batch, v.Status).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceVehicles(context.Background(), vehicles))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRepository_ReplaceVehicles_DuplicateRollsBack(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVehicleRepository(db)
	vehicles := domain.SampleVehicles()[:1]

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM vehicles")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO vehicles")).
		ExpectExec().
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	err := repo.ReplaceVehicles(context.Background(), vehicles)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate chassis number")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRepository_UpdateVehicleStatus(t *testing.T) {
	db, mock := newMock(t)
	repo := NewVehicleRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE vehicles")).
		WithArgs("In Service", "md9hapxf4gr710037").
		WillReturnRows(sqlmock.NewRows(vehicleColumns).
			AddRow("MD9HAPXF4GR710037", "KA01EV1234", "Hero Electric Optima", "22-Nov-24", "BLR", "Batch-1", "In Service"))

	v, err := repo.UpdateVehicleStatus(context.Background(), "md9hapxf4gr710037", "In Service")
	require.NoError(t, err)
	assert.Equal(t, "In Service", v.Status)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE vehicles")).
		WithArgs("In Service", "missing").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.UpdateVehicleStatus(context.Background(), "missing", "In Service")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentStore(t *testing.T) {
	db, mock := newMock(t)
	store := NewDocumentStore(db)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv_documents")).
		WithArgs("cities", []byte(`["BLR"]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, store.Set(ctx, "cities", []byte(`["BLR"]`)))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_documents")).
		WithArgs("cities").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`["BLR"]`)))
	got, err := store.Get(ctx, "cities")
	require.NoError(t, err)
	assert.Equal(t, `["BLR"]`, string(got))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_documents")).
		WithArgs("parts").
		WillReturnError(sql.ErrNoRows)
	_, err = store.Get(ctx, "parts")
	assert.ErrorIs(t, err, ports.ErrKeyNotFound)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv_documents")).
		WithArgs(pq.Array([]string{"a", "b"})).
		WillReturnResult(sqlmock.NewResult(0, 2))
	require.NoError(t, store.Delete(ctx, "a", "b"))

	// no keys, no query
	require.NoError(t, store.Delete(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}
