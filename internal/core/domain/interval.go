package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Interval is the delay between consecutive keep-alive probes.
// It is global to the registry: every enabled drive uses the same value.
type Interval string

// Supported intervals.
const (
	// Interval1m probes every minute.
	Interval1m Interval = "1m"

	// Interval3m probes every three minutes.
	Interval3m Interval = "3m"

	// Interval5m probes every five minutes.
	Interval5m Interval = "5m"

	// Interval10m probes every ten minutes.
	Interval10m Interval = "10m"
)

// DefaultInterval is used until the user picks another one.
const DefaultInterval = Interval3m

// Intervals returns every supported interval in menu order.
func Intervals() []Interval {
	return []Interval{Interval1m, Interval3m, Interval5m, Interval10m}
}

// IsValid returns true if the interval is one of the supported values.
func (i Interval) IsValid() bool {
	switch i {
	case Interval1m, Interval3m, Interval5m, Interval10m:
		return true
	default:
		return false
	}
}

// Duration converts the interval to a time.Duration.
// Returns 0 for unsupported values.
func (i Interval) Duration() time.Duration {
	switch i {
	case Interval1m:
		return 1 * time.Minute
	case Interval3m:
		return 3 * time.Minute
	case Interval5m:
		return 5 * time.Minute
	case Interval10m:
		return 10 * time.Minute
	default:
		return 0
	}
}

// Minutes returns the interval as a whole number of minutes.
func (i Interval) Minutes() int {
	return int(i.Duration() / time.Minute)
}

// String returns the string representation.
func (i Interval) String() string {
	return string(i)
}

// Description returns a human-readable label such as "3 minutes".
func (i Interval) Description() string {
	if !i.IsValid() {
		return unknownDescription
	}
	if n := i.Minutes(); n != 1 {
		return fmt.Sprintf("%d minutes", n)
	}
	return "1 minute"
}

// ParseInterval accepts "3", "3m", "3m0s", "3 min" and "3 minutes".
func ParseInterval(s string) (Interval, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, suffix := range []string{"minutes", "minute", "mins", "min"} {
		if strings.HasSuffix(v, suffix) {
			v = strings.TrimSpace(strings.TrimSuffix(v, suffix)) + "m"
			break
		}
	}
	if _, err := strconv.Atoi(v); err == nil {
		v += "m"
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidInterval, s)
	}
	for _, iv := range Intervals() {
		if iv.Duration() == d {
			return iv, nil
		}
	}
	return "", fmt.Errorf("%w: %q (supported: 1, 3, 5 or 10 minutes)", ErrInvalidInterval, s)
}

// IntervalFromMinutes maps a whole number of minutes to an Interval.
func IntervalFromMinutes(n int) (Interval, error) {
	return ParseInterval(strconv.Itoa(n))
}
