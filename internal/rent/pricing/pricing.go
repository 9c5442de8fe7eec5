package pricing

import "time"

// DefaultCommissionRate is the platform fee applied when configuration does not set one.
const DefaultCommissionRate = 0.10

const secondsPerDay = 24 * 60 * 60

// Quote is the price breakdown for renting at a daily rate over a date range.
type Quote struct {
	TotalDays     int     `json:"total_days"`
	Subtotal      float64 `json:"subtotal"`
	CommissionFee float64 `json:"commission_fee"`
}

// Calculate bills every started day between start and end. The span is taken as an
// absolute value, so reversed bounds price the same range; callers that need ordered
// bounds must check them first.
func Calculate(dailyRate float64, start, end time.Time, commissionRate float64) Quote {
	days := billableDays(start, end)
	subtotal := dailyRate * float64(days)
	return Quote{
		TotalDays:     days,
		Subtotal:      subtotal,
		CommissionFee: subtotal * commissionRate,
	}
}

// billableDays is ceil(|end-start| / 24h) computed from Unix seconds, which does
// not saturate the way time.Duration does past roughly 292 years.
func billableDays(start, end time.Time) int {
	secs := end.Unix() - start.Unix()
	nanos := int64(end.Nanosecond()) - int64(start.Nanosecond())
	if secs < 0 || (secs == 0 && nanos < 0) {
		secs, nanos = -secs, -nanos
	}
	if nanos < 0 {
		secs--
		nanos += int64(time.Second)
	}
	days := secs / secondsPerDay
	if secs%secondsPerDay != 0 || nanos > 0 {
		days++
	}
	return int(days)
}
