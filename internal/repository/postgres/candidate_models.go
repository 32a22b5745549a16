package postgres

import (
	"time"

	"candidate-intake/internal/domain"

	"gorm.io/gorm"
)

type candidateModel struct {
	ID              int64                 `gorm:"primaryKey"`
	FirstName       string                `gorm:"size:100;not null"`
	LastName        string                `gorm:"size:100;not null"`
	Email           string                `gorm:"size:255;uniqueIndex;not null"`
	Phone           *string               `gorm:"size:15"`
	Address         *string               `gorm:"size:100"`
	Educations      []educationModel      `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`
	WorkExperiences []workExperienceModel `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`
	Resumes         []resumeModel         `gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (candidateModel) TableName() string { return "candidates" }

type educationModel struct {
	ID          int64  `gorm:"primaryKey"`
	CandidateID int64  `gorm:"index;not null"`
	Institution string `gorm:"size:100;not null"`
	Title       string `gorm:"size:100;not null"`
	StartDate   time.Time
	EndDate     *time.Time
}

func (educationModel) TableName() string { return "educations" }

type workExperienceModel struct {
	ID          int64   `gorm:"primaryKey"`
	CandidateID int64   `gorm:"index;not null"`
	Company     string  `gorm:"size:100;not null"`
	Position    string  `gorm:"size:100;not null"`
	Description *string `gorm:"size:200"`
	StartDate   time.Time
	EndDate     *time.Time
}

func (workExperienceModel) TableName() string { return "work_experiences" }

type resumeModel struct {
	ID          int64  `gorm:"primaryKey"`
	CandidateID int64  `gorm:"index;not null"`
	FilePath    string `gorm:"size:500;not null"`
	FileType    string `gorm:"size:50;not null"`
	UploadDate  time.Time
}

func (resumeModel) TableName() string { return "resumes" }

// AutoMigrate creates or updates the candidate tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&candidateModel{}, &educationModel{}, &workExperienceModel{}, &resumeModel{})
}

func toCandidateModel(c *domain.Candidate) candidateModel {
	m := candidateModel{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
	}
	for i := range c.Educations {
		m.Educations = append(m.Educations, toEducationModel(&c.Educations[i]))
	}
	for i := range c.WorkExperiences {
		m.WorkExperiences = append(m.WorkExperiences, toWorkExperienceModel(&c.WorkExperiences[i]))
	}
	for i := range c.Resumes {
		m.Resumes = append(m.Resumes, toResumeModel(&c.Resumes[i]))
	}
	return m
}

func (m *candidateModel) toDomain() *domain.Candidate {
	c := &domain.Candidate{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for i := range m.Educations {
		c.Educations = append(c.Educations, *m.Educations[i].toDomain())
	}
	for i := range m.WorkExperiences {
		c.WorkExperiences = append(c.WorkExperiences, *m.WorkExperiences[i].toDomain())
	}
	for i := range m.Resumes {
		c.Resumes = append(c.Resumes, *m.Resumes[i].toDomain())
	}
	return c
}

func toEducationModel(e *domain.Education) educationModel {
	return educationModel{
		ID:          e.ID,
		CandidateID: e.CandidateID,
		Institution: e.Institution,
		Title:       e.Title,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
	}
}

func (m *educationModel) toDomain() *domain.Education {
	return &domain.Education{
		ID:          m.ID,
		CandidateID: m.CandidateID,
		Institution: m.Institution,
		Title:       m.Title,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
	}
}

func toWorkExperienceModel(w *domain.WorkExperience) workExperienceModel {
	return workExperienceModel{
		ID:          w.ID,
		CandidateID: w.CandidateID,
		Company:     w.Company,
		Position:    w.Position,
		Description: w.Description,
		StartDate:   w.StartDate,
		EndDate:     w.EndDate,
	}
}

func (m *workExperienceModel) toDomain() *domain.WorkExperience {
	return &domain.WorkExperience{
		ID:          m.ID,
		CandidateID: m.CandidateID,
		Company:     m.Company,
		Position:    m.Position,
		Description: m.Description,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
	}
}

func toResumeModel(r *domain.Resume) resumeModel {
	return resumeModel{
		ID:          r.ID,
		CandidateID: r.CandidateID,
		FilePath:    r.FilePath,
		FileType:    r.FileType,
		UploadDate:  r.UploadDate,
	}
}

func (m *resumeModel) toDomain() *domain.Resume {
	return &domain.Resume{
		ID:          m.ID,
		CandidateID: m.CandidateID,
		FilePath:    m.FilePath,
		FileType:    m.FileType,
		UploadDate:  m.UploadDate,
	}
}
