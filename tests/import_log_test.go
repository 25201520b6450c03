package tests

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogImport(t *testing.T) {
	excludes := []string{
		"config/",
		"tests/",
	}

	Walk(t, "", excludes, checkLogImport)
}

func checkLogImport(path string) error {
	codes := ReadFile(path)

	for line, code := range codes {
		code = strings.TrimSpace(code)
		code = strings.TrimPrefix(code, "import ")
		code = strings.Trim(code, "\"")

		if code == "log" {
			abs, _ := filepath.Abs(path)
			return fmt.Errorf("Use \"ethabi/util/log\" instead of \"log\" in\n%s:%d", abs, line+1)
		}
	}

	return nil
}

func TestCheckLogImport(t *testing.T) {
	if err := checkLogImport("import_log_test.go"); err != nil {
		t.Fatalf("Get error=%v, want nil", err)
	}
}
