// Package db connects the catalog to its MySQL store.
package db

import (
	"errors"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQL opens a GORM handle over the catalog database. The DSN must
// enable parseTime so created_at columns scan into time.Time.
func NewMySQL(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("empty mysql dsn")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}
