package card

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// DigitsProvider is the randomness source for generated card identifiers.
// Injecting it keeps identifier generation deterministic under test.
type DigitsProvider interface {
	// Intn returns a uniform random int in [0, n).
	Intn(n int) int
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewDigitsProvider returns a time-seeded provider safe for concurrent use.
func NewDigitsProvider() DigitsProvider {
	return &lockedRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// generateCardNumber renders four independent zero-padded 4-digit groups.
func generateCardNumber(digits DigitsProvider) string {
	return fmt.Sprintf("%04d-%04d-%04d-%04d",
		digits.Intn(cardNumberGroupBound),
		digits.Intn(cardNumberGroupBound),
		digits.Intn(cardNumberGroupBound),
		digits.Intn(cardNumberGroupBound))
}

// generateCardPin draws a PIN in [0, 9999], rendered without zero-padding.
func generateCardPin(digits DigitsProvider) string {
	return strconv.Itoa(digits.Intn(cardPinBound))
}

// generateCcvCode draws a CCV in [0, 999], rendered without zero-padding.
func generateCcvCode(digits DigitsProvider) string {
	return strconv.Itoa(digits.Intn(ccvCodeBound))
}

// expirationYearMonth computes the year-month 36 months after the creation
// date. Anchoring to the first of the month avoids day-overflow normalization.
func expirationYearMonth(creation time.Time) string {
	return time.Date(creation.Year(), creation.Month()+ExpirationMonths, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}
