package cli

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}
