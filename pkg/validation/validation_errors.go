package validation

import "candidate-intake/pkg/apperror"

// Field keys used by the candidate validator.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldAddress     = "address"
	FieldInstitution = "institution"
	FieldTitle       = "title"
	FieldStartDate   = "startDate"
	FieldEndDate     = "endDate"
	FieldCompany     = "company"
	FieldPosition    = "position"
	FieldDescription = "description"
	FieldCV          = "cv"
)

// FieldMessages maps each checked field to the message returned to clients.
var FieldMessages = map[string]string{
	FieldName:        "Invalid name",
	FieldEmail:       "Invalid email",
	FieldPhone:       "Invalid phone",
	FieldAddress:     "Invalid address",
	FieldInstitution: "Invalid institution",
	FieldTitle:       "Invalid title",
	FieldStartDate:   "Invalid date",
	FieldEndDate:     "Invalid end date",
	FieldCompany:     "Invalid company",
	FieldPosition:    "Invalid position",
	FieldDescription: "Invalid description",
	FieldCV:          "Invalid CV data",
}

// Message returns the client message for field.
func Message(field string) string {
	if msg, ok := FieldMessages[field]; ok {
		return msg
	}
	return "Invalid " + field
}

// Failure builds the validation error for field.
func Failure(field string) *apperror.AppError {
	return apperror.Validation(Message(field))
}
