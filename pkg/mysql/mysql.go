package mysql

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"ethabi/config"
	"ethabi/pkg/reconnector"
	"ethabi/util/log"

	// Import mysql driver
	_ "github.com/go-sql-driver/mysql"
)

var (
	connConfig = map[string]string{
		"charset":   "utf8mb4",
		"parseTime": "True",
		"loc":       "Local",
	}
)

// DB encapsulates MySQL DB variables.
type DB struct {
	db *sql.DB
}

var (
	dbClient *DB

	autoReconnectDisabled = false

	errNotInitialized = errors.New("cannot execute sql: please init db client first")
)

// Init opens the db connection from config and checks if the connection is valid.
func Init() {
	if err := Open(config.GetDbConnStr()); err != nil {
		log.Fatalf("Failed to connect database %s: %v", config.GetDBInfo(), err)
	}
}

// Open connects to the database of the given "user:pass@tcp(host:port)/db"
// connection string.
func Open(connStr string) error {
	if connCfg := getConnConfig(); connCfg != "" {
		if strings.Contains(connStr, "?") {
			connStr += "&" + connCfg
		} else {
			connStr += "?" + connCfg
		}
	}

	db, err := sql.Open("mysql", connStr)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return err
	}

	db.SetConnMaxLifetime(1 * time.Hour)
	dbClient = &DB{db}

	log.Info("Database connected")
	return nil
}

// Close closes the db connection.
func Close() error {
	if dbClient == nil {
		return nil
	}

	err := dbClient.db.Close()
	dbClient = nil
	return err
}

// DisableAutoReconnect disables auto-reconnect feature.
func DisableAutoReconnect() {
	autoReconnectDisabled = true
}

// Exec executes a statement without a transaction.
func Exec(query string, args ...interface{}) (sql.Result, error) {
	if err := dbReady(); err != nil {
		return nil, err
	}

	debugSQL(query, args)
	return dbClient.db.Exec(query, args...)
}

// QueryRow executes a query returning at most one row.
func QueryRow(query string, args ...interface{}) (*sql.Row, error) {
	if err := dbReady(); err != nil {
		return nil, err
	}

	debugSQL(query, args)
	return dbClient.db.QueryRow(query, args...), nil
}

// Trans runs fn inside a transaction, which is committed if fn
// returns nil and rolled back otherwise.
func Trans(fn func(sqlTx *sql.Tx) error) error {
	if err := dbReady(); err != nil {
		return err
	}

	sqlTx, err := dbClient.db.Begin()
	if err != nil {
		if autoReconnectDisabled || !dbClient.lostConnection() {
			return err
		}

		dbClient.reconnect()
		if sqlTx, err = dbClient.db.Begin(); err != nil {
			return err
		}
	}

	if err := fn(sqlTx); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil {
			log.Error(rbErr)
		}
		return err
	}

	return sqlTx.Commit()
}

// TxExec executes a statement inside sqlTx, logging it in debug-sql mode.
func TxExec(sqlTx *sql.Tx, query string, args ...interface{}) (sql.Result, error) {
	debugSQL(query, args)
	return sqlTx.Exec(query, args...)
}

func getConnConfig() string {
	var configSlice []string

	for k, v := range connConfig {
		configSlice = append(configSlice, k+"="+v)
	}

	return strings.Join(configSlice, "&")
}

func debugSQL(query string, args []interface{}) {
	if config.DebugSQLMode() {
		log.DebugSQL(query, args)
	}
}

func (db *DB) reconnect() {
	reconnector.Reconnect("Mysql", func() error {
		return db.db.Ping()
	})
}

func (db *DB) lostConnection() bool {
	return db.db.Ping() != nil
}

func dbReady() error {
	if dbClient == nil {
		return errNotInitialized
	}

	return nil
}
