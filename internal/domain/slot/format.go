package slot

import "time"

const (
	// Day names, full month, zero padded day, 24h clock with an AM/PM suffix.
	DisplayLayout = "Monday, January, 02, 2006, 15:04 PM"

	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

func Display(t time.Time) string {
	return t.Format(DisplayLayout)
}
