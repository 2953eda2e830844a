package models

import (
	"time"

	"gorm.io/gorm"
)

type JobType string

const (
	JobStudent  JobType = "Student"
	JobEmployee JobType = "Employee"
	JobTeacher  JobType = "Teacher"
	JobManager  JobType = "Manager"
	JobDirector JobType = "Director"
	JobOther    JobType = "Other"
)

// ValidJobType reports whether s is one of the selectable job types.
func ValidJobType(s string) bool {
	switch JobType(s) {
	case JobStudent, JobEmployee, JobTeacher, JobManager, JobDirector, JobOther:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Email        string    `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `gorm:"not null"`
	FirstName    string    `gorm:"size:100;not null"`
	LastName     string    `gorm:"size:100;not null"`
	DateOfBirth  time.Time `gorm:"not null"`
	JobType      JobType   `gorm:"type:varchar(20);not null"`
	Photo        string    `gorm:"size:255"` // filename inside the upload store, empty if none
	IDNumber     string    `gorm:"uniqueIndex;size:20;not null"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
