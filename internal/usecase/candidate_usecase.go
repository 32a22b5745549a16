package usecase

import (
	"context"
	"time"

	"candidate-intake/internal/domain"
	"candidate-intake/pkg/apperror"
	"candidate-intake/pkg/validation"
)

type candidateUsecase struct {
	repo      domain.CandidateRepository
	validator domain.CandidateValidator
	atomic    bool
	now       func() time.Time
}

// NewCandidateUsecase wires the intake flow. With atomic set, the candidate and
// its nested records are saved in one transaction; otherwise a failing nested
// save leaves the candidate row in place.
func NewCandidateUsecase(repo domain.CandidateRepository, validator domain.CandidateValidator, atomic bool) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:      repo,
		validator: validator,
		atomic:    atomic,
		now:       time.Now,
	}
}

func (u *candidateUsecase) AddCandidate(ctx context.Context, input *domain.CandidateInput) (*domain.Candidate, error) {
	if err := u.validator.Validate(input); err != nil {
		return nil, err
	}

	candidate := newCandidate(input)

	if !u.atomic {
		return u.persist(ctx, u.repo, candidate, input)
	}

	var saved *domain.Candidate
	err := u.repo.WithinTransaction(ctx, func(repo domain.CandidateRepository) error {
		var err error
		saved, err = u.persist(ctx, repo, candidate, input)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (u *candidateUsecase) GetCandidate(ctx context.Context, id int64) (*domain.Candidate, error) {
	if id <= 0 {
		return nil, apperror.BadRequest("Invalid candidate id")
	}
	candidate, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return candidate, nil
}

// persist saves the candidate, then each nested record against the saved id.
// The returned candidate is the one the store handed back for the first save;
// nested results are not merged into it.
func (u *candidateUsecase) persist(ctx context.Context, repo domain.CandidateRepository, candidate *domain.Candidate, input *domain.CandidateInput) (*domain.Candidate, error) {
	var (
		saved *domain.Candidate
		err   error
	)
	if candidate.IsNew() {
		saved, err = repo.Create(ctx, candidate)
	} else {
		saved, err = repo.Update(ctx, candidate)
	}
	if err != nil {
		return nil, err
	}

	for _, in := range input.Educations {
		education, err := newEducation(saved.ID, in)
		if err != nil {
			return nil, err
		}
		if _, err := repo.CreateEducation(ctx, education); err != nil {
			return nil, err
		}
	}

	for _, in := range input.WorkExperiences {
		experience, err := newWorkExperience(saved.ID, in)
		if err != nil {
			return nil, err
		}
		if _, err := repo.CreateWorkExperience(ctx, experience); err != nil {
			return nil, err
		}
	}

	if input.HasCV() {
		resume := &domain.Resume{
			CandidateID: saved.ID,
			FilePath:    input.CV.FilePath.Value,
			FileType:    input.CV.FileType.Value,
			UploadDate:  u.now().UTC(),
		}
		if _, err := repo.CreateResume(ctx, resume); err != nil {
			return nil, err
		}
	}

	return saved, nil
}

func newCandidate(input *domain.CandidateInput) *domain.Candidate {
	candidate := &domain.Candidate{
		FirstName: input.FirstName.Value,
		LastName:  input.LastName.Value,
		Email:     input.Email.Value,
		Phone:     input.Phone.Ptr(),
		Address:   input.Address.Ptr(),
	}
	if input.ID != nil {
		candidate.ID = *input.ID
	}
	return candidate
}

func newEducation(candidateID int64, in domain.EducationInput) (*domain.Education, error) {
	start, end, err := parsePeriod(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	return &domain.Education{
		CandidateID: candidateID,
		Institution: in.Institution.Value,
		Title:       in.Title.Value,
		StartDate:   start,
		EndDate:     end,
	}, nil
}

func newWorkExperience(candidateID int64, in domain.WorkExperienceInput) (*domain.WorkExperience, error) {
	start, end, err := parsePeriod(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	experience := &domain.WorkExperience{
		CandidateID: candidateID,
		Company:     in.Company.Value,
		Position:    in.Position.Value,
		StartDate:   start,
		EndDate:     end,
	}
	if !in.Description.Blank() {
		experience.Description = in.Description.Ptr()
	}
	return experience, nil
}

func parsePeriod(startField, endField domain.Field) (time.Time, *time.Time, error) {
	start, err := validation.ParseDate(startField.Value)
	if err != nil {
		return time.Time{}, nil, validation.Failure(validation.FieldStartDate)
	}
	if endField.Blank() {
		return start, nil, nil
	}
	end, err := validation.ParseDate(endField.Value)
	if err != nil {
		return time.Time{}, nil, validation.Failure(validation.FieldEndDate)
	}
	return start, &end, nil
}
