package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekalin/fintrack/internal/logger"
	"github.com/ekalin/fintrack/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL creates a DB from an existing *sql.DB (for tests).
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func newTestUserRepo(t *testing.T, db *sql.DB) UserRepository {
	t.Helper()
	return NewUserRepository(newDBFromSQL(db), logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var userColumns = []string{"user_id", "username", "email", "password_hash", "access_token", "created_at"}

// ─────────────────────────────────────────────
// CreateUser
// ─────────────────────────────────────────────

func TestUserRepository_CreateUser_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	createdAt := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(createUser)).
		WithArgs("alice", "alice@example.com", "hashed").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(42), "alice", "alice@example.com", "hashed", "", createdAt))

	created, err := repo.CreateUser(testContext(), models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.UserID)
	assert.Equal(t, createdAt, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_DuplicateEmail(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(createUser)).
		WithArgs("alice", "taken@example.com", "hashed").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_uindex"})

	_, err := repo.CreateUser(testContext(), models.User{
		Username:     "alice",
		Email:        "taken@example.com",
		PasswordHash: "hashed",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_UnexpectedError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(createUser)).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.CreateUser(testContext(), models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed",
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// FindUserByEmail / FindUserByID
// ─────────────────────────────────────────────

func TestUserRepository_FindUserByEmail_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(findUserByEmail)).
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(42), "alice", "alice@example.com", "hashed", "access-token", time.Now()))

	foundUser, err := repo.FindUserByEmail(testContext(), "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, int64(42), foundUser.UserID)
	assert.Equal(t, "access-token", foundUser.AccessToken)
}

func TestUserRepository_FindUserByEmail_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(findUserByEmail)).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(testContext(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestUserRepository_FindUserByID_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(findUserByID)).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(testContext(), 404)
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

// ─────────────────────────────────────────────
// UpdateUsername
// ─────────────────────────────────────────────

func TestUserRepository_UpdateUsername_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(updateUsername)).
		WithArgs(int64(42), "bob").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(42), "bob", "alice@example.com", "hashed", "", time.Now()))

	updated, err := repo.UpdateUsername(testContext(), 42, "bob")

	require.NoError(t, err)
	assert.Equal(t, "bob", updated.Username)
}

func TestUserRepository_UpdateUsername_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(updateUsername)).
		WithArgs(int64(404), "bob").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateUsername(testContext(), 404, "bob")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

// ─────────────────────────────────────────────
// UpdatePassword
// ─────────────────────────────────────────────

func TestUserRepository_UpdatePassword_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta(updatePassword)).
		WithArgs(int64(42), "old-hash", "new-hash").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePassword(testContext(), 42, "old-hash", "new-hash")
	require.NoError(t, err)
}

func TestUserRepository_UpdatePassword_Conflict(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	// zero affected rows: the stored hash no longer matches oldHash
	mock.ExpectExec(regexp.QuoteMeta(updatePassword)).
		WithArgs(int64(42), "stale-hash", "new-hash").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePassword(testContext(), 42, "stale-hash", "new-hash")
	assert.ErrorIs(t, err, ErrPasswordConflict)
}

// ─────────────────────────────────────────────
// UpdateAccessToken
// ─────────────────────────────────────────────

func TestUserRepository_UpdateAccessToken_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta(updateAccessToken)).
		WithArgs(int64(42), "access-token").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateAccessToken(testContext(), 42, "access-token")
	require.NoError(t, err)
}

func TestUserRepository_UpdateAccessToken_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta(updateAccessToken)).
		WithArgs(int64(404), "access-token").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateAccessToken(testContext(), 404, "access-token")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

// ─────────────────────────────────────────────
// ListLinkedUserIDs
// ─────────────────────────────────────────────

func TestUserRepository_ListLinkedUserIDs(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(listLinkedUserIDs)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).
			AddRow(int64(1)).
			AddRow(int64(3)))

	ids, err := repo.ListLinkedUserIDs(testContext())

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids)
}

func TestUserRepository_ListLinkedUserIDs_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestUserRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(listLinkedUserIDs)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	ids, err := repo.ListLinkedUserIDs(testContext())

	require.NoError(t, err)
	assert.Empty(t, ids)
}
