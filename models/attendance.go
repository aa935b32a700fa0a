package models

import (
	"time"

	"gorm.io/gorm"
)

type Attendance struct {
	Id         int64     `gorm:"primaryKey" json:"id"`
	EmployeeId string    `gorm:"size:64;uniqueIndex:idx_attendance_employee_day" json:"employeeId"`
	Name       string    `json:"name"`
	Timestamp  time.Time `gorm:"index" json:"timestamp"`
	// Day is the local calendar date of Timestamp. Together with EmployeeId it
	// forms the compound unique key that makes the one-mark-per-day rule an
	// atomic insert-time constraint rather than a read-then-write check.
	Day       string `gorm:"size:10;uniqueIndex:idx_attendance_employee_day" json:"-"`
	Method    string `gorm:"size:16" json:"method"`
	Status    string `gorm:"size:16" json:"status"`
	Location  string `json:"location,omitempty"`
	IpAddress string `json:"ipAddress,omitempty"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// BeforeCreate stamps the record time and derives the calendar-day column.
func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}
	a.Day = a.Timestamp.In(time.Local).Format("2006-01-02")
	return nil
}
