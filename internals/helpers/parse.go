// file: internals/helpers/parse.go
package helper

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ParseUintParam membaca path param numerik (:id dsb).
func ParseUintParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Parameter "+name+" tidak valid")
	}
	return uint(v), nil
}

// NormalizeMonth memvalidasi kunci bulan "YYYY-MM".
func NormalizeMonth(raw string) (string, error) {
	m := strings.TrimSpace(raw)
	if _, err := time.Parse("2006-01", m); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Format bulan harus YYYY-MM")
	}
	return m, nil
}

// IsUniqueViolation mendeteksi pelanggaran unique index lintas driver
// (SQLite "UNIQUE constraint failed", Postgres "duplicate key value").
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key value")
}
