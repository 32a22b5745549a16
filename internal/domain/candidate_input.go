package domain

import "encoding/json"

// CandidateInput is the submission payload. A non-nil ID marks an edit.
type CandidateInput struct {
	ID              *int64                `json:"id,omitempty"`
	FirstName       Field                 `json:"firstName"`
	LastName        Field                 `json:"lastName"`
	Email           Field                 `json:"email"`
	Phone           Field                 `json:"phone"`
	Address         Field                 `json:"address"`
	Educations      []EducationInput      `json:"educations,omitempty"`
	WorkExperiences []WorkExperienceInput `json:"workExperiences,omitempty"`
	CV              *ResumeInput          `json:"cv,omitempty"`
}

type EducationInput struct {
	Institution Field `json:"institution"`
	Title       Field `json:"title"`
	StartDate   Field `json:"startDate"`
	EndDate     Field `json:"endDate"`
}

type WorkExperienceInput struct {
	Company     Field `json:"company"`
	Position    Field `json:"position"`
	Description Field `json:"description"`
	StartDate   Field `json:"startDate"`
	EndDate     Field `json:"endDate"`
}

type ResumeInput struct {
	FilePath Field `json:"filePath"`
	FileType Field `json:"fileType"`

	keys int
}

// UnmarshalJSON counts every key sent, known or not, so `{"path":"x"}` is
// still a submitted CV.
func (r *ResumeInput) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = ResumeInput{keys: len(raw)}
	if v, ok := raw["filePath"]; ok {
		if err := r.FilePath.UnmarshalJSON(v); err != nil {
			return err
		}
	}
	if v, ok := raw["fileType"]; ok {
		if err := r.FileType.UnmarshalJSON(v); err != nil {
			return err
		}
	}
	return nil
}

func (in *CandidateInput) IsEdit() bool {
	return in.ID != nil
}

// HasCV reports whether a CV object with at least one key was submitted.
// Only an empty `cv: {}` counts as no CV.
func (in *CandidateInput) HasCV() bool {
	if in.CV == nil {
		return false
	}
	return in.CV.keys > 0 || in.CV.FilePath.Present || in.CV.FileType.Present
}
