package mysql

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
)

const errDuplicateEntry = 1062

// IsDuplicateEntryError checks if duplicated record error occurred or not.
func IsDuplicateEntryError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == errDuplicateEntry
	}

	return false
}

// IsRecordNotFoundError checks if no rows was returned or not.
func IsRecordNotFoundError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
