package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitialiseDatabase opens the sqlite database at path and migrates the schema.
func InitialiseDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %s", err.Error())
	}

	// sqlite ships with foreign keys off; the cascade constraints depend on it
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %s", err.Error())
	}

	err = db.AutoMigrate(
		&Poll{}, &Question{}, &Choice{},
		&User{},
		&TextResponse{}, &SingleChoiceResponse{}, &MultipleChoicesResponse{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %s", err.Error())
	}

	return db, nil
}
