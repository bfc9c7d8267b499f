package models

import (
	"time"
)

type AdmissionApplication struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	StudentName    string    `json:"student_name"`
	FatherName     string    `json:"father_name"`
	MotherName     string    `json:"mother_name"`
	DateOfBirth    string    `json:"date_of_birth"`
	GuardianPhone  string    `json:"guardian_phone" gorm:"index"`
	Address        string    `json:"address"`
	ClassApplied   string    `json:"class_applied"`
	PreviousSchool string    `json:"previous_school"`
	Status         string    `json:"status"` // submitted, under_review, accepted, rejected
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
