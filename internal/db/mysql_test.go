package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMySQL_EmptyDSN(t *testing.T) {
	gormDB, err := NewMySQL("")

	assert.Error(t, err)
	assert.Nil(t, gormDB)
}
