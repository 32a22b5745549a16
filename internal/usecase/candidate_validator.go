package usecase

import (
	"candidate-intake/internal/domain"
	"candidate-intake/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	nameRules        = "required,min=2,max=100,valid_name"
	emailRules       = "required,valid_email"
	phoneRules       = "valid_phone"
	addressRules     = "max=100"
	requiredText100  = "required,max=100"
	descriptionRules = "max=200"
	startDateRules   = "required,valid_date"
	endDateRules     = "valid_date"
)

type candidateValidator struct {
	validate *validator.Validate
}

// NewCandidateValidator expects validate to carry the rules from validation.RegisterValidators.
func NewCandidateValidator(validate *validator.Validate) domain.CandidateValidator {
	return &candidateValidator{validate: validate}
}

// Validate stops at the first invalid field. Order: names, email, phone,
// address, educations, work experiences, CV.
func (v *candidateValidator) Validate(input *domain.CandidateInput) error {
	if input == nil {
		return validation.Failure(validation.FieldName)
	}

	if !v.check(input.FirstName, nameRules) || !v.check(input.LastName, nameRules) {
		return validation.Failure(validation.FieldName)
	}
	if !v.check(input.Email, emailRules) {
		return validation.Failure(validation.FieldEmail)
	}
	if !input.Phone.Blank() && !v.check(input.Phone, phoneRules) {
		return validation.Failure(validation.FieldPhone)
	}
	if !input.Address.Blank() && !v.check(input.Address, addressRules) {
		return validation.Failure(validation.FieldAddress)
	}

	for _, education := range input.Educations {
		if err := v.validateEducation(education); err != nil {
			return err
		}
	}
	for _, experience := range input.WorkExperiences {
		if err := v.validateWorkExperience(experience); err != nil {
			return err
		}
	}

	if input.HasCV() {
		cv := input.CV
		if cv.FilePath.Blank() || !cv.FilePath.IsString || cv.FileType.Blank() || !cv.FileType.IsString {
			return validation.Failure(validation.FieldCV)
		}
	}
	return nil
}

func (v *candidateValidator) validateEducation(education domain.EducationInput) error {
	if !v.check(education.Institution, requiredText100) {
		return validation.Failure(validation.FieldInstitution)
	}
	if !v.check(education.Title, requiredText100) {
		return validation.Failure(validation.FieldTitle)
	}
	return v.validatePeriod(education.StartDate, education.EndDate)
}

func (v *candidateValidator) validateWorkExperience(experience domain.WorkExperienceInput) error {
	if !v.check(experience.Company, requiredText100) {
		return validation.Failure(validation.FieldCompany)
	}
	if !v.check(experience.Position, requiredText100) {
		return validation.Failure(validation.FieldPosition)
	}
	if !experience.Description.Blank() && !v.check(experience.Description, descriptionRules) {
		return validation.Failure(validation.FieldDescription)
	}
	return v.validatePeriod(experience.StartDate, experience.EndDate)
}

func (v *candidateValidator) validatePeriod(start, end domain.Field) error {
	if !v.check(start, startDateRules) {
		return validation.Failure(validation.FieldStartDate)
	}
	if !end.Blank() && !v.check(end, endDateRules) {
		return validation.Failure(validation.FieldEndDate)
	}
	return nil
}

// check runs rules against a string field. Non-string JSON values always fail.
func (v *candidateValidator) check(field domain.Field, rules string) bool {
	if field.Present && !field.IsString {
		return false
	}
	return v.validate.Var(field.Value, rules) == nil
}
