package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oliviagunda/Resume-Processor/internal/models"
)

type JobSeekerRepository interface {
	Create(seeker *models.JobSeeker) error
	FindByEmail(email string) (*models.JobSeeker, error)
	List(limit, offset int) ([]models.JobSeeker, error)
	DeleteByID(id uuid.UUID) error
	CountCandidates() (int64, error)
	TopSkills(limit int) ([]SkillCount, error)
}

type SkillCount struct {
	Skill string `json:"skill"`
	Count int64  `json:"count"`
}

type jobSeekerRepository struct {
	db *gorm.DB
}

func NewJobSeekerRepository(db *gorm.DB) JobSeekerRepository {
	return &jobSeekerRepository{db: db}
}

// Create inserts the candidate together with its experience and skill
// rows in one transaction; any child failure rolls back everything.
func (r *jobSeekerRepository) Create(seeker *models.JobSeeker) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(seeker).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create job seeker: %w", err)
	}
	return nil
}

// FindByEmail returns the most recently inserted candidate for the
// address. Duplicates are allowed by design, so "most recent" is the
// defined answer.
func (r *jobSeekerRepository) FindByEmail(email string) (*models.JobSeeker, error) {
	var seeker models.JobSeeker
	err := r.db.
		Preload("Experiences").
		Preload("Skills").
		Where("email = ?", email).
		Order("created_at DESC").
		First(&seeker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job seeker not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find job seeker: %w", err)
	}
	return &seeker, nil
}

func (r *jobSeekerRepository) List(limit, offset int) ([]models.JobSeeker, error) {
	var seekers []models.JobSeeker
	err := r.db.
		Preload("Experiences").
		Preload("Skills").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&seekers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list job seekers: %w", err)
	}
	return seekers, nil
}

// DeleteByID is administrative; cascade clears the child tables.
func (r *jobSeekerRepository) DeleteByID(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.JobSeeker{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete job seeker: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job seeker not found")
	}
	return nil
}

func (r *jobSeekerRepository) CountCandidates() (int64, error) {
	var count int64
	if err := r.db.Model(&models.JobSeeker{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count job seekers: %w", err)
	}
	return count, nil
}

// TopSkills reports the most common stored skills, grouped
// case-insensitively.
func (r *jobSeekerRepository) TopSkills(limit int) ([]SkillCount, error) {
	var counts []SkillCount
	err := r.db.
		Model(&models.JobSeekerSkill{}).
		Select("lower(skill) AS skill, count(DISTINCT job_seeker_id) AS count").
		Group("lower(skill)").
		Order("count DESC, skill ASC").
		Limit(limit).
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate skills: %w", err)
	}
	return counts, nil
}
