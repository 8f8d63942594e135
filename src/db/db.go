package db

import (
	"log"
	"studio/src/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func Open(dsn string) (*gorm.DB, error) {
	_db, err := gorm.Open(postgres.Open(dsn))
	if err != nil {
		return nil, err
	}
	sqlDB, err := _db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	return _db, nil
}

func GetDb() *gorm.DB {
	if db != nil {
		return db
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading database config: %s\n", err.Error())
	}
	_db, err := Open(cfg.DSN())
	if err != nil {
		log.Printf("Error connecting to database: %s\n", err.Error())
		panic(err)
	}
	db = _db
	return _db
}

// NewDB replaces the shared connection, e.g. with a sqlmock backed one.
func NewDB(newdb *gorm.DB) {
	db = newdb
}
