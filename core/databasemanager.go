package core

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type LogLevel int

const (
	LogLevelSilent LogLevel = iota + 1
	LogLevelError
	LogLevelWarn
	LogLevelInfo
)

func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "warn", "warning":
		return LogLevelWarn
	}
	return LogLevelInfo
}

func (l LogLevel) gorm() logger.LogLevel {
	switch l {
	case LogLevelSilent:
		return logger.Silent
	case LogLevelError:
		return logger.Error
	case LogLevelWarn:
		return logger.Warn
	}
	return logger.Info
}

// DatabaseManager holds one pool shared by every tenant schema. A request borrows a single
// connection and switches it to the tenant's schema.
type DatabaseManager struct {
	SqlDB    *sql.DB
	LogLevel LogLevel
	// DefaultSchema is used for requests arriving on localhost or a bare IP.
	DefaultSchema string
}

// New creates the global pool. dsn should not include the schema.
func New(dsn string, maxConnection int) (*DatabaseManager, error) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open pool: %w", err)
	}

	sqlDB.SetMaxOpenConns(maxConnection)
	sqlDB.SetMaxIdleConns(maxConnection)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping pool: %w", err)
	}

	return &DatabaseManager{SqlDB: sqlDB, DefaultSchema: SchemaFromDSN(dsn)}, nil
}

// SchemaFromDSN returns the database name of a mysql DSN, or "" when it has none.
func SchemaFromDSN(dsn string) string {
	dsnWithoutQuery := strings.SplitN(dsn, "?", 2)[0]
	i := strings.LastIndex(dsnWithoutQuery, "/")
	if i < 0 {
		return ""
	}
	return dsnWithoutQuery[i+1:]
}

// SchemaForHost maps a request host to a tenant schema, e.g. "tokyo.lms.example.com" -> "tokyo".
func (dm *DatabaseManager) SchemaForHost(host string) string {
	if host == "localhost" || host == "127.0.0.1" || host == "" {
		return dm.DefaultSchema
	}
	return strings.Split(host, ".")[0]
}

// GetDB gets a *gorm.DB bound to a single connection of the pool, switched to schema.
// The caller must close the returned connection.
func (dm *DatabaseManager) GetDB(ctx context.Context, schema string) (*gorm.DB, *sql.Conn, error) {
	if schema == "" {
		return nil, nil, fmt.Errorf("no schema for request")
	}

	conn, err := dm.SqlDB.Conn(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get conn: %w", err)
	}

	if _, err := conn.ExecContext(ctx, "USE `"+schema+"`"); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to use schema %s: %w", schema, err)
	}

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(dm.LogLevel.gorm()),
	})
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to open gorm: %w", err)
	}

	return db, conn, nil
}

// Close closes the global pool
func (dm *DatabaseManager) Close() error {
	return dm.SqlDB.Close()
}

func (dm *DatabaseManager) Exec(ctx context.Context, schema string, fn func(db *gorm.DB) error) error {
	db, conn, err := dm.GetDB(ctx, schema)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(db)
}

// Connect opens a standalone gorm connection for command line tools. dsn must include
// the schema.
func Connect(dsn string, level LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(level.gorm()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	return db, nil
}

// GetAllDatabases lists the tenant schemas on the server.
func (dm *DatabaseManager) GetAllDatabases(ctx context.Context) ([]string, error) {
	rows, err := dm.SqlDB.QueryContext(ctx, "SHOW DATABASES")
	if err != nil {
		return nil, fmt.Errorf("failed to query databases: %w", err)
	}
	defer rows.Close()

	var databases []string
	for rows.Next() {
		var db string
		if err := rows.Scan(&db); err != nil {
			return nil, fmt.Errorf("failed to scan database name: %w", err)
		}

		switch db {
		case "information_schema", "mysql", "performance_schema", "sys":
			continue
		}
		databases = append(databases, db)
	}

	return databases, rows.Err()
}
