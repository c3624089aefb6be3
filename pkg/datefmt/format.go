// pkg/datefmt/format.go
// Formatter label tanggal pendek ("Thu, Jul 24"), selalu dalam UTC.

package datefmt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/itlightning/dateparse"
)

// ErrInvalidDateFormat dikembalikan jika input tidak bisa di-parse sebagai tanggal/waktu.
var ErrInvalidDateFormat = errors.New("invalid date format")

// labelLayout: weekday singkat, bulan singkat, tanggal tanpa leading zero.
const labelLayout = "Mon, Jan 2"

// Layout ISO yang dicoba dulu sebelum fallback ke dateparse.
// Open-Meteo mengirim "2006-01-02T15:04" (tanpa detik & zona).
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Format mengubah timestamp ISO-8601 menjadi label seperti "Thu, Jul 24".
// Tanggal dihitung dari kalender UTC, tidak pernah dari zona waktu lokal host.
func Format(input string) (string, error) {
	t, err := Parse(input)
	if err != nil {
		return "", err
	}
	return Label(t), nil
}

// Label merender instant yang sudah di-parse.
func Label(t time.Time) string {
	return t.UTC().Format(labelLayout)
}

// Parse membaca input dalam konteks UTC eksplisit.
// Input tanpa offset dianggap UTC.
func Parse(input string) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty input", ErrInvalidDateFormat)
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, input)
	}
	// Singkatan zona yang tidak dikenal (CEST, PST, ...) diberi offset 0 oleh parser,
	// jadi jam lokal terbaca sebagai UTC. Tolak daripada salah hari.
	if name, off := t.Zone(); off == 0 && !utcZoneNames[name] {
		return time.Time{}, fmt.Errorf("%w: unknown zone %q in %q", ErrInvalidDateFormat, name, input)
	}
	// tanpa tahun (mis. "Jul 24") -> year 0, weekday-nya tidak bermakna
	if t.Year() == 0 {
		return time.Time{}, fmt.Errorf("%w: missing year in %q", ErrInvalidDateFormat, input)
	}
	return t.UTC(), nil
}

// nama zona yang memang ber-offset 0
var utcZoneNames = map[string]bool{"": true, "UTC": true, "GMT": true, "UT": true, "Z": true}
