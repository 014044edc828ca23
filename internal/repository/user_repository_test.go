package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUserRepository_FindByEmail(t *testing.T) {
	gormDB, mock := newTestDB(t)
	repo := NewUserRepository(gormDB)

	mock.ExpectQuery("SELECT .* FROM `users` WHERE email = ?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password", "created_at"}).
			AddRow(1, "Test User", "test@example.com", "$2a$10$hash", time.Now()))

	user, err := repo.FindByEmail(context.Background(), "test@example.com")

	assert.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "test@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	gormDB, mock := newTestDB(t)
	repo := NewUserRepository(gormDB)

	mock.ExpectQuery("SELECT .* FROM `users` WHERE email = ?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password", "created_at"}))

	user, err := repo.FindByEmail(context.Background(), "missing@example.com")

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
