package domain

import (
	"context"
	"time"
)

// Candidate is the applicant record. ID is zero until the first save.
type Candidate struct {
	ID              int64            `json:"id"`
	FirstName       string           `json:"firstName"`
	LastName        string           `json:"lastName"`
	Email           string           `json:"email"`
	Phone           *string          `json:"phone"`
	Address         *string          `json:"address"`
	Educations      []Education      `json:"educations,omitempty"`
	WorkExperiences []WorkExperience `json:"workExperiences,omitempty"`
	Resumes         []Resume         `json:"resumes,omitempty"`
	CreatedAt       time.Time        `json:"createdAt,omitzero"`
	UpdatedAt       time.Time        `json:"updatedAt,omitzero"`
}

type Education struct {
	ID          int64      `json:"id"`
	CandidateID int64      `json:"candidateId"`
	Institution string     `json:"institution"`
	Title       string     `json:"title"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

type WorkExperience struct {
	ID          int64      `json:"id"`
	CandidateID int64      `json:"candidateId"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	Description *string    `json:"description,omitempty"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

type Resume struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"candidateId"`
	FilePath    string    `json:"filePath"`
	FileType    string    `json:"fileType"`
	UploadDate  time.Time `json:"uploadDate"`
}

// IsNew reports whether the candidate has never been persisted.
func (c *Candidate) IsNew() bool {
	return c.ID == 0
}

// CandidateRepository is the persistence port for the candidate aggregate.
// FindByID returns (nil, nil) when no row matches.
type CandidateRepository interface {
	Create(ctx context.Context, candidate *Candidate) (*Candidate, error)
	Update(ctx context.Context, candidate *Candidate) (*Candidate, error)
	FindByID(ctx context.Context, id int64) (*Candidate, error)
	CreateEducation(ctx context.Context, education *Education) (*Education, error)
	CreateWorkExperience(ctx context.Context, experience *WorkExperience) (*WorkExperience, error)
	CreateResume(ctx context.Context, resume *Resume) (*Resume, error)
	WithinTransaction(ctx context.Context, fn func(repo CandidateRepository) error) error
}

type CandidateValidator interface {
	Validate(input *CandidateInput) error
}

type CandidateUsecase interface {
	AddCandidate(ctx context.Context, input *CandidateInput) (*Candidate, error)
	GetCandidate(ctx context.Context, id int64) (*Candidate, error)
}
