package models

import "time"

type User struct {
	Id         int64      `gorm:"primaryKey" json:"id"`
	Name       string     `json:"name"`
	EmployeeId string     `gorm:"uniqueIndex;size:64" json:"employeeId"`
	Email      string     `gorm:"uniqueIndex;size:191" json:"email"`
	FaceData   string     `gorm:"type:longtext" json:"faceData,omitempty"` // Base64 encoded face image
	Role       string     `gorm:"default:employee" json:"role"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
}

func (User) TableName() string {
	return "users"
}
