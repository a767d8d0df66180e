package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/vibe-vault/internal/logger"
	"github.com/MKhiriev/vibe-vault/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return newPostgresDB(conn, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{db: db}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.NewUser("john", "hash")
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (username,password,role) VALUES ($1,$2,$3) RETURNING id")).
		WithArgs("john", "hash", models.RoleUser).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Username != "john" || created.Role != models.RoleUser {
		t.Errorf("unexpected user returned: %+v", created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.NewUser("john", "hash"))
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.NewUser("john", "hash"))
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password, role FROM users WHERE username = $1")).
		WithArgs("john").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(4, "john", "hash", models.RoleAdmin))

	found, err := repo.FindUserByUsername(context.Background(), "john")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != 4 || found.Password != "hash" || !found.IsAdmin() {
		t.Errorf("unexpected user: %+v", found)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT id, username").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByUsername(context.Background(), "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByUsername_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT id, username").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1)) // wrong shape

	_, err := repo.FindUserByUsername(context.Background(), "john")
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestExistsByUsername(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{name: "exists", count: 1, want: true},
		{name: "absent", count: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users WHERE username = $1")).
				WithArgs("john").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			got, err := repo.ExistsByUsername(context.Background(), "john")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestExistsByUsername_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("boom"))

	_, err := repo.ExistsByUsername(context.Background(), "john")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestUpdateUserRole(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET role = $1 WHERE id = $2")).
		WithArgs(models.RoleAdmin, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateUserRole(context.Background(), 2, models.RoleAdmin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateUserRole_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateUserRole(context.Background(), 2, models.RoleAdmin)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
