package models

import (
	"time"

	"github.com/google/uuid"
)

type JobSeeker struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name            string    `gorm:"type:text;not null" json:"name"`
	Email           string    `gorm:"type:text;index" json:"email"`
	Phone           string    `gorm:"type:text" json:"phone"`
	TotalExperience float64   `gorm:"type:decimal(5,2)" json:"total_experience"`
	ResumeText      string    `gorm:"type:text" json:"resume_text"`
	CreatedAt       time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt       time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`

	// Relations
	Experiences []JobSeekerExperience `gorm:"foreignKey:JobSeekerID;constraint:OnDelete:CASCADE" json:"experiences,omitempty"`
	Skills      []JobSeekerSkill      `gorm:"foreignKey:JobSeekerID;constraint:OnDelete:CASCADE" json:"skills,omitempty"`
}

func (JobSeeker) TableName() string {
	return "job_seeker"
}

type JobSeekerExperience struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobSeekerID uuid.UUID `gorm:"type:uuid;not null;index" json:"job_seeker_id"`
	CompanyName string    `gorm:"type:text;not null" json:"company_name"`
	Tenure      string    `gorm:"type:text" json:"tenure"`
	CreatedAt   time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (JobSeekerExperience) TableName() string {
	return "job_seeker_experience"
}

type JobSeekerSkill struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobSeekerID uuid.UUID `gorm:"type:uuid;not null;index" json:"job_seeker_id"`
	Skill       string    `gorm:"type:text;not null" json:"skill"`
	CreatedAt   time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (JobSeekerSkill) TableName() string {
	return "job_seeker_skills"
}
