// internal/db/db.go
package db

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

var DB *sql.DB

func Init(logger *logrus.Logger) {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	name := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		user, pass, host, port, name,
	)

	var err error
	DB, err = sql.Open("postgres", dsn)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to DB")
	}

	if err = DB.Ping(); err != nil {
		logger.WithError(err).Fatal("failed to ping DB")
	}

	logger.WithFields(logrus.Fields{"host": host, "database": name}).Info("connected to database")
}
