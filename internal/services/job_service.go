package services

import (
	"errors"

	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/dtos"
	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

func (s *JobService) Create(req *dtos.JobRequest) (*models.Job, error) {
	job := &models.Job{
		Title:        req.Title,
		Department:   req.Department,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryRange:  req.SalaryRange,
		Location:     req.Location,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, wrapDBError(err)
	}
	return job, nil
}

// List returns all postings, newest first.
func (s *JobService) List() ([]models.Job, error) {
	var jobs []models.Job
	if err := s.DB.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, wrapDBError(err)
	}
	return jobs, nil
}

// GetByID returns (nil, nil) when the job does not exist.
func (s *JobService) GetByID(id uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapDBError(err)
	}
	return &job, nil
}

// Update is the explicit admin edit; postings are otherwise immutable.
func (s *JobService) Update(id uint, req *dtos.JobRequest) (*models.Job, error) {
	job, err := s.GetByID(id)
	if err != nil || job == nil {
		return job, err
	}

	job.Title = req.Title
	job.Department = req.Department
	job.Description = req.Description
	job.Requirements = req.Requirements
	job.SalaryRange = req.SalaryRange
	job.Location = req.Location

	if err := s.DB.Save(job).Error; err != nil {
		return nil, wrapDBError(err)
	}
	return job, nil
}

func (s *JobService) Delete(id uint) error {
	if err := s.DB.Delete(&models.Job{}, id).Error; err != nil {
		return wrapDBError(err)
	}
	return nil
}

// titlesFor batch-resolves job ids to titles for email rendering. Missing ids
// simply have no entry in the returned map.
func titlesFor(db *gorm.DB, ids []uint) (map[uint]string, error) {
	if len(ids) == 0 {
		return map[uint]string{}, nil
	}
	var jobs []models.Job
	if err := db.Select("id, title").Where("id IN ?", ids).Find(&jobs).Error; err != nil {
		return nil, wrapDBError(err)
	}
	titles := make(map[uint]string, len(jobs))
	for _, j := range jobs {
		titles[j.ID] = j.Title
	}
	return titles, nil
}
