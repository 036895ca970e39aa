package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/rahmadf/hcm-reg3-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestMutationRepositoryCreateAndFind(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewMutationRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO mutations")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	mutation := &models.Mutation{
		Perner:      "10001234",
		NewUnit:     "Witel Suramadu",
		NewSubUnit:  "Network Operations",
		NewPosition: "Officer 2",
	}
	require.NoError(t, repo.Create(context.Background(), mutation))
	require.NotEmpty(t, mutation.ID)
	require.Equal(t, models.MutationStatusPending, mutation.Status)

	rows := sqlmock.NewRows([]string{"id", "perner", "new_unit", "new_sub_unit", "new_position", "status", "rejection_reason", "created_at"}).
		AddRow(mutation.ID, "10001234", "Witel Suramadu", "Network Operations", "Officer 2", "PENDING", nil, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, perner, new_unit")).
		WithArgs("10001234").
		WillReturnRows(rows)

	found, err := repo.FindByPerner(context.Background(), "10001234")
	require.NoError(t, err)
	require.Equal(t, mutation.ID, found.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMutationRepositoryCreateDuplicateKey(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewMutationRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO mutations")).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &models.Mutation{Perner: "10001234"})
	require.ErrorIs(t, err, ErrDuplicateKey)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMutationRepositoryExistsTarget(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewMutationRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM mutations")).
		WithArgs("10001234", "Witel Bali", "Consumer Service").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.ExistsTarget(context.Background(), "10001234", "Witel Bali", "Consumer Service")
	require.NoError(t, err)
	require.True(t, exists)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM mutations")).
		WithArgs("10001234", "Witel Bali", "Enterprise Service").
		WillReturnError(sql.ErrNoRows)

	exists, err = repo.ExistsTarget(context.Background(), "10001234", "Witel Bali", "Enterprise Service")
	require.NoError(t, err)
	require.False(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMutationRepositoryUpdateFields(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewMutationRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE mutations SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	unit := "Witel Bali"
	err := repo.UpdateFields(context.Background(), "10001234", models.MutationUpdate{NewUnit: &unit})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMutationRepositoryUpdateStatusMissingRow(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewMutationRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE mutations SET status")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "99999999", models.MutationStatusApproved, nil)
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMutationRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewMutationRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM mutations")).
		WithArgs("10001234").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "10001234"))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM mutations")).
		WithArgs("10001234").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, repo.Delete(context.Background(), "10001234"), sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMutationRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewMutationRepository(db)
	rows := sqlmock.NewRows([]string{"id", "perner", "employee_name", "new_unit", "new_sub_unit", "new_position", "status", "created_at"}).
		AddRow("mut-1", "10001234", "Putu Wijaya", "Witel Bali", "Consumer Service", "Officer 2", "PENDING", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT m.id, m.perner, e.name AS employee_name")).
		WillReturnRows(rows)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Putu Wijaya", list[0].EmployeeName)
	require.NoError(t, mock.ExpectationsWereMet())
}
