package storefront_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestModuleDependencies_Present(t *testing.T) {
	for _, module := range []string{
		"github.com/shopspring/decimal",
		"github.com/jackc/pgx/v5",
		"github.com/go-playground/validator/v10",
		"github.com/simp-lee/logger",
		"github.com/knadh/koanf/v2",
		"gorm.io/driver/postgres",
		"github.com/glebarez/sqlite",
	} {
		t.Run(module, func(t *testing.T) {
			testModulePresence(t, module)
		})
	}
}

func TestMoneyFields_NoFloats(t *testing.T) {
	t.Run("happy_repo_has_no_float_money", func(t *testing.T) {
		matches, err := findFloatMoneyFields(filepath.Join("internal", "domain"))
		if err != nil {
			t.Fatalf("scan domain package: %v", err)
		}
		if len(matches) != 0 {
			t.Fatalf("expected money fields to use decimal.Decimal, found floats in: %v", matches)
		}
	})

	t.Run("error_fixture_with_float_price_is_detected", func(t *testing.T) {
		fixture := `package domain
type OrderItem struct {
	Price        float64 ` + "`json:\"price\"`" + `
}`
		if !hasFloatMoneyField(fixture) {
			t.Fatal("expected float price to be detected in fixture")
		}
	})
}

func testModulePresence(t *testing.T, module string) {
	t.Helper()

	t.Run("happy_present_in_real_go_mod", func(t *testing.T) {
		goMod, err := os.ReadFile("go.mod")
		if err != nil {
			t.Fatalf("read go.mod: %v", err)
		}
		if !moduleRequired(string(goMod), module) {
			t.Fatalf("expected module %q to be present in go.mod", module)
		}
	})

	t.Run("error_missing_module_in_fixture", func(t *testing.T) {
		fixture := `module example.com/demo

go 1.25.0

require (
	github.com/gin-gonic/gin v1.11.0
)`
		if moduleRequired(fixture, module) {
			t.Fatalf("expected fixture to not contain module %q", module)
		}
	})
}

func moduleRequired(goModContent, module string) bool {
	re := regexp.MustCompile(`(?m)^\s*` + regexp.QuoteMeta(module) + `\s+v\S+`)
	return re.MatchString(goModContent)
}

func findFloatMoneyFields(root string) ([]string, error) {
	matches := make([]string, 0)
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		b, readErr := os.ReadFile(path)
		if readErr != nil {
			return readErr
		}
		if hasFloatMoneyField(string(b)) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

var floatMoneyField = regexp.MustCompile(`(?m)^\s*(Price|FreightValue|PaymentValue|TotalValue)\s+\*?float(32|64)\b`)

func hasFloatMoneyField(content string) bool {
	return floatMoneyField.MatchString(content)
}
