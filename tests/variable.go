package tests

import "os"

// GetTestDSN gets the MySQL connection string of the test database from
// environment variable, e.g. "root:pass@tcp(127.0.0.1:3306)/ethabi_test".
func GetTestDSN() string {
	return os.Getenv("ETHABI_TEST_DSN")
}
