package calendar

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/rhizvo/Budget-Planner/internal/types"
)

// LoadHolidayFile reads one holiday file into the set.
//
// Each line has the format "Name,YYYY-MM-DD". Malformed lines are logged and
// skipped so that one bad entry does not invalidate the whole calendar.
// A missing file is not an error: adjustments then only consider weekends.
func LoadHolidayFile(path string, holidays HolidaySet) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		log.Warn().Str("path", path).Msg("holiday file not found, only weekends will be considered")
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening holiday file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		name, rawDate, ok := strings.Cut(line, ",")
		if !ok {
			log.Warn().Str("path", path).Str("line", line).Msg("skipping malformed holiday line")
			continue
		}

		date, err := types.ParseDate(strings.TrimSpace(rawDate))
		if err != nil {
			log.Warn().Str("path", path).Str("holiday", name).Str("date", rawDate).Msg("could not parse holiday date")
			continue
		}

		holidays.Add(date)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading holiday file: %w", err)
	}

	return nil
}

// LoadHolidays builds the holiday set for a horizon from year-keyed files
// named "holidays_<year>.txt" in dir. The set is the union of all years
// overlapping [start, end].
func LoadHolidays(dir string, start, end types.Date) (HolidaySet, error) {
	holidays := NewHolidaySet()

	for year := start.Year(); year <= end.Year(); year++ {
		path := filepath.Join(dir, fmt.Sprintf("holidays_%d.txt", year))
		if err := LoadHolidayFile(path, holidays); err != nil {
			return nil, err
		}
	}

	return holidays, nil
}
