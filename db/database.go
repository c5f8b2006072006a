package db

import (
	"database/sql"
	"fmt"
	"strings"

	"sgac_app_go/config"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Initialize opens the database selected by DB_DRIVER and stores it in DB
func Initialize(cfg *config.Config) error {
	dialector, err := Dialector(cfg)
	if err != nil {
		return err
	}

	DB, err = gorm.Open(dialector, GormConfig(cfg.Environment))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// libsql connections do not accept DSN pragmas
	if cfg.DBDriver == "libsql" {
		if err := pinForeignKeys(DB); err != nil {
			zap.L().Warn("could not enable foreign keys on libsql connection", zap.Error(err))
		}
	}

	zap.L().Info("Database connection established", zap.String("driver", cfg.DBDriver))
	return nil
}

// pinForeignKeys limits the pool to a single long-lived connection and enables
// foreign keys on it. PRAGMA foreign_keys is per connection, so it would not
// reach connections the pool opens later.
func pinForeignKeys(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)
	return gdb.Exec("PRAGMA foreign_keys = ON").Error
}

// Dialector returns the gorm dialector for the configured driver
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "", "sqlite":
		// WAL for concurrent readers, foreign keys for cascading deletes
		return sqlite.Open(SQLiteDSN(cfg.DBPath + "?_journal_mode=WAL")), nil
	case "libsql":
		if cfg.TursoDatabaseURL == "" {
			return nil, fmt.Errorf("TURSO_DATABASE_URL is required for the libsql driver")
		}
		url := cfg.TursoDatabaseURL
		if cfg.TursoAuthToken != "" {
			url += "?authToken=" + cfg.TursoAuthToken
		}
		conn, err := sql.Open("libsql", url)
		if err != nil {
			return nil, fmt.Errorf("failed to open libsql connection: %w", err)
		}
		return sqlite.New(sqlite.Config{DriverName: "libsql", Conn: conn}), nil
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
		return postgres.Open(cfg.DatabaseURL), nil
	case "mysql":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the mysql driver")
		}
		return mysql.Open(cfg.DatabaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// SQLiteDSN appends the foreign key pragma to a sqlite DSN
func SQLiteDSN(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// GormConfig returns the shared gorm configuration.
// TranslateError turns driver constraint errors into gorm.ErrForeignKeyViolated / gorm.ErrDuplicatedKey.
func GormConfig(environment string) *gorm.Config {
	logLevel := logger.Info
	switch environment {
	case config.EnvProduction:
		logLevel = logger.Warn
	case "test":
		logLevel = logger.Silent
	}

	return &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	}
}

// AutoMigrate runs database migrations for the provided models
func AutoMigrate(models ...interface{}) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	if err := DB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	zap.L().Info("Database migrations completed")
	return nil
}

// Ping checks that the database answers
func Ping() error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
