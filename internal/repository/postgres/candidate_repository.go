package postgres

import (
	"context"
	"database/sql/driver"
	"errors"

	"candidate-intake/internal/domain"
	"candidate-intake/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

// Create inserts the candidate together with any non-empty nested collections.
func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) (*domain.Candidate, error) {
	m := toCandidateModel(candidate)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return m.toDomain(), nil
}

// Update writes scalar columns only. Nested collections are never touched here.
func (r *candidateRepository) Update(ctx context.Context, candidate *domain.Candidate) (*domain.Candidate, error) {
	res := r.db.WithContext(ctx).
		Model(&candidateModel{}).
		Where("id = ?", candidate.ID).
		Updates(updateColumns(candidate))
	if res.Error != nil {
		return nil, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperror.NotFoundCause(apperror.MsgNotFound, gorm.ErrRecordNotFound)
	}

	var m candidateModel
	if err := r.db.WithContext(ctx).First(&m, candidate.ID).Error; err != nil {
		return nil, translateError(err)
	}
	return m.toDomain(), nil
}

func (r *candidateRepository) FindByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	var m candidateModel
	err := r.db.WithContext(ctx).
		Preload("Educations").
		Preload("WorkExperiences").
		Preload("Resumes").
		First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateError(err)
	}
	return m.toDomain(), nil
}

func (r *candidateRepository) CreateEducation(ctx context.Context, education *domain.Education) (*domain.Education, error) {
	m := toEducationModel(education)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return m.toDomain(), nil
}

func (r *candidateRepository) CreateWorkExperience(ctx context.Context, experience *domain.WorkExperience) (*domain.WorkExperience, error) {
	m := toWorkExperienceModel(experience)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return m.toDomain(), nil
}

func (r *candidateRepository) CreateResume(ctx context.Context, resume *domain.Resume) (*domain.Resume, error) {
	m := toResumeModel(resume)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, translateError(err)
	}
	return m.toDomain(), nil
}

// WithinTransaction hands fn a repository bound to a single transaction.
// Any error returned by fn rolls the transaction back.
func (r *candidateRepository) WithinTransaction(ctx context.Context, fn func(repo domain.CandidateRepository) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&candidateRepository{db: tx})
	})
	return translateError(err)
}

// updateColumns lists the scalar columns to write; undefined optionals are left out.
func updateColumns(c *domain.Candidate) map[string]interface{} {
	cols := map[string]interface{}{
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"email":      c.Email,
	}
	if c.Phone != nil {
		cols["phone"] = *c.Phone
	}
	if c.Address != nil {
		cols["address"] = *c.Address
	}
	return cols
}

// translateError maps driver and ORM failures onto apperror kinds.
// Unrecognised errors are returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var connErr *pgconn.ConnectError
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &connErr), errors.Is(err, driver.ErrBadConn):
		return apperror.Connection(err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.NotFoundCause(apperror.MsgNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperror.Duplicate(apperror.MsgDuplicateEmail, err)
	case errors.As(err, &pgErr) && pgErr.Code == uniqueViolation:
		return apperror.Duplicate(apperror.MsgDuplicateEmail, err)
	}
	return err
}
