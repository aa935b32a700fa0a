package helper

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// TodayWindow returns the local calendar-day window [midnight, midnight+24h)
// containing t.
func TodayWindow(t time.Time) (start, end time.Time) {
	y, m, d := t.In(time.Local).Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return start, start.AddDate(0, 0, 1)
}

// AverageCheckInHour returns the mean local clock hour (fractional) of the
// given mark timestamps. The second return value is false when there is no
// data to average.
func AverageCheckInHour(timestamps []time.Time) (float64, bool) {
	if len(timestamps) == 0 {
		return 0, false
	}
	hours := make([]float64, len(timestamps))
	for i, ts := range timestamps {
		local := ts.In(time.Local)
		hours[i] = float64(local.Hour()) + float64(local.Minute())/60 + float64(local.Second())/3600
	}
	return stat.Mean(hours, nil), true
}
