package jobs

import (
	"log"
	"time"

	"SMARTATTEND/helper"
	"SMARTATTEND/models"

	"github.com/go-co-op/gocron"
)

// StartRecapScheduler schedules the nightly attendance recap shortly before
// the calendar day rolls over.
func StartRecapScheduler() *gocron.Scheduler {
	s := gocron.NewScheduler(time.Local)
	if _, err := s.Every(1).Day().At("23:55").Do(LogDailyRecap); err != nil {
		log.Printf("recap job not scheduled: %v", err)
	}
	s.StartAsync()
	return s
}

// LogDailyRecap logs how the day went: mark totals per status and the mean
// check-in hour. Read-only.
func LogDailyRecap() {
	start, end := helper.TodayWindow(time.Now())

	var rows []models.Attendance
	if err := models.DB.Where("timestamp >= ? AND timestamp < ?", start, end).Find(&rows).Error; err != nil {
		log.Printf("daily recap query failed: %v", err)
		return
	}

	var present, late int
	stamps := make([]time.Time, 0, len(rows))
	for _, row := range rows {
		switch row.Status {
		case "present":
			present++
		case "late":
			late++
		}
		stamps = append(stamps, row.Timestamp)
	}

	day := start.Format("2006-01-02")
	if avg, ok := helper.AverageCheckInHour(stamps); ok {
		log.Printf("daily recap %s: %d marks (%d present, %d late), mean check-in %02d:%02d",
			day, len(rows), present, late, int(avg), int(avg*60)%60)
	} else {
		log.Printf("daily recap %s: no attendance marked", day)
	}
}
