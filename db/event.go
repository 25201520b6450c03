package db

import (
	"database/sql"
	"fmt"
	"strings"

	"ethabi/models"
	"ethabi/pkg/mysql"
	"ethabi/util/log"
)

const eventTable = "`abi_event`"

var eventColumns = []string{
	"`id`",
	"`contract`",
	"`name`",
	"`signature`",
	"`topic`",
	"`anonymous`",
}

const eventTableDDL = "CREATE TABLE IF NOT EXISTS " + eventTable + ` (
	` + "`id`" + ` INT UNSIGNED NOT NULL AUTO_INCREMENT,
	` + "`contract`" + ` VARCHAR(128) NOT NULL,
	` + "`name`" + ` VARCHAR(255) NOT NULL,
	` + "`signature`" + ` TEXT NOT NULL,
	` + "`topic`" + ` CHAR(66) NOT NULL,
	` + "`anonymous`" + ` TINYINT(1) NOT NULL DEFAULT 0,
	PRIMARY KEY (` + "`id`" + `),
	UNIQUE KEY ` + "`uk_contract_topic`" + ` (` + "`contract`, `topic`" + `),
	KEY ` + "`idx_topic`" + ` (` + "`topic`" + `)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

// CreateEventTable creates the event signature table if it does not exist.
func CreateEventTable() error {
	_, err := mysql.Exec(eventTableDDL)
	return err
}

// InsertEvents persists the signatures of events declared by contract in
// one transaction. Already stored signatures are skipped. It returns the
// number of inserted rows.
func InsertEvents(contract string, events []models.Event) (int, error) {
	inserted := 0
	query := insertEventQuery()

	err := mysql.Trans(func(sqlTx *sql.Tx) error {
		for _, event := range events {
			record := models.NewEventRecord(contract, event)

			_, err := mysql.TxExec(sqlTx, query,
				record.Contract,
				record.Name,
				record.Signature,
				record.Topic,
				record.Anonymous,
			)
			if mysql.IsDuplicateEntryError(err) {
				log.Debugf("Event %s of %s already stored", record.Signature, contract)
				continue
			}
			if err != nil {
				return fmt.Errorf("insert event %s: %w", record.Signature, err)
			}

			inserted++
		}

		return nil
	})

	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// GetEventByTopic returns the stored event with the given topic,
// or nil if there is none.
func GetEventByTopic(topic string) (*models.EventRecord, error) {
	query := strings.Join([]string{
		fmt.Sprintf("SELECT %s", strings.Join(eventColumns, ", ")),
		"FROM " + eventTable,
		"WHERE `topic` = ?",
		"ORDER BY `id` ASC",
		"LIMIT 1",
	}, " ")

	row, err := mysql.QueryRow(query, strings.ToLower(topic))
	if err != nil {
		return nil, err
	}

	record := models.EventRecord{}
	err = row.Scan(
		&record.ID,
		&record.Contract,
		&record.Name,
		&record.Signature,
		&record.Topic,
		&record.Anonymous,
	)
	if mysql.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func insertEventQuery() string {
	return strings.Join([]string{
		"INSERT INTO " + eventTable,
		fmt.Sprintf("(%s)", strings.Join(eventColumns[1:], ", ")),
		fmt.Sprintf("VALUES (%s)", strings.Repeat(",?", len(eventColumns[1:]))[1:]),
	}, " ")
}
