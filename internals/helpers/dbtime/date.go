// file: internals/helpers/dbtime/date.go
package dbtime

import (
	"time"

	"gorm.io/datatypes"
)

const (
	LayoutDate  = "2006-01-02"
	LayoutMonth = "2006-01"
)

// ParseDate membaca "YYYY-MM-DD" menjadi datatypes.Date (UTC midnight).
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.ParseInLocation(LayoutDate, s, time.UTC)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

// FormatDate menulis datatypes.Date sebagai "YYYY-MM-DD".
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(LayoutDate)
}

// Today mengembalikan tanggal hari ini (UTC midnight).
func Today() datatypes.Date {
	return Truncate(time.Now().UTC())
}

// Truncate membuang komponen jam dari sebuah time.Time.
func Truncate(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// DaysBetween menghitung selisih hari kalender utuh a − b.
func DaysBetween(a, b datatypes.Date) int {
	return int(time.Time(a).Sub(time.Time(b)).Hours() / 24)
}

// MonthOf mengembalikan kunci bulan "YYYY-MM" dari sebuah tanggal.
func MonthOf(t time.Time) string {
	return t.Format(LayoutMonth)
}
