package config

import (
	"context"
	"errors"
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the shared database handle, opened once per process.
var DB *gorm.DB

// InitDB opens the MySQL connection. TranslateError maps driver errors
// such as duplicate keys onto gorm sentinel errors.
func InitDB() {
	dsn := os.Getenv("DB_DSN")
	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Error connecting to the database:", err)
	}
	log.Println("Database connected")
}

// PingDB reports whether the shared handle is usable right now. Called
// per request rather than trusting the connection made at startup.
func PingDB(ctx context.Context) error {
	if DB == nil {
		return errors.New("database not initialized")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
