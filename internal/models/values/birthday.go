package values

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/assistant/internal/common"
)

// BirthdayLayout is the stored form of a birthday.
const BirthdayLayout = "02.01.2006"

// now is a test seam for the current time used by the "not in the future" rule.
var now = time.Now

var (
	birthdaySeparators = strings.NewReplacer("/", ".", "-", ".")
	birthdayPattern    = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
)

// Birthday is a past calendar date stored as DD.MM.YYYY.
type Birthday struct {
	value string
	date  time.Time
}

// NewBirthday normalizes and validates raw. Separators "/" and "-" are
// accepted in place of ".", and one-digit days and months are zero-padded.
func NewBirthday(raw string) (Birthday, error) {
	value := NormalizeBirthday(raw)

	if value == "" {
		return Birthday{}, common.NewValidation("birthday", common.KindEmpty, "Birthday should not be empty")
	}

	m := birthdayPattern.FindStringSubmatch(value)
	if m == nil {
		return Birthday{}, common.NewValidation("birthday", common.KindFormat, "Birthday must be in format DD.MM.YYYY")
	}

	// the pattern guarantees digits, so Atoi cannot fail here
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if day < 1 || day > 31 {
		return Birthday{}, common.NewValidation("birthday", common.KindRange, "Day must be between 01 and 31")
	}
	if month < 1 || month > 12 {
		return Birthday{}, common.NewValidation("birthday", common.KindRange, "Month must be between 01 and 12")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if year < 1 || date.Day() != day || int(date.Month()) != month {
		return Birthday{}, common.NewValidation("birthday", common.KindRange, "Invalid calendar date")
	}

	if date.After(today()) {
		return Birthday{}, common.NewValidation("birthday", common.KindTemporal, "Birthday cannot be in the future")
	}

	return Birthday{value: fmt.Sprintf("%02d.%02d.%04d", day, month, year), date: date}, nil
}

// NormalizeBirthday trims raw and unifies separators to ".".
func NormalizeBirthday(raw string) string {
	return birthdaySeparators.Replace(strings.TrimSpace(raw))
}

// String returns the date as DD.MM.YYYY.
func (b Birthday) String() string {
	return b.value
}

// Date returns the birthday at local midnight.
func (b Birthday) Date() time.Time {
	return b.date
}

func (b Birthday) Equal(other Birthday) bool {
	return b.value == other.value
}

func today() time.Time {
	t := now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
