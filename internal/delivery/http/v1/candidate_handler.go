package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"candidate-intake/internal/delivery/http/response"
	"candidate-intake/internal/domain"
	"candidate-intake/pkg/apperror"
	"candidate-intake/pkg/security"

	"github.com/gin-gonic/gin"
)

const (
	msgCandidateAdded = "Candidate added successfully"
	msgAddFailed      = "Error adding candidate"
	msgUnknownError   = "Unknown error"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	audit       *security.SecurityLogger
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase, audit *security.SecurityLogger) {
	if audit == nil {
		audit = security.DefaultLogger()
	}
	handler := &CandidateHandler{candidateUC: candidateUC, audit: audit}

	candidates := r.Group("/candidates")
	{
		candidates.POST("", handler.AddCandidate)
		candidates.GET("/:id", handler.GetCandidate)
	}
}

// AddCandidate godoc
// @Summary      Add or edit a candidate
// @Description  Validates the submission and stores the candidate with its educations, work experiences and CV. A payload carrying an id edits that candidate's scalar fields.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        request body domain.CandidateInput true "Candidate submission"
// @Success      201  {object}  response.Response{data=domain.Candidate}
// @Failure      400  {object}  response.Response
// @Router       /candidates [post]
func (h *CandidateHandler) AddCandidate(c *gin.Context) {
	var input domain.CandidateInput

	// Anything thrown below that is not an error value still gets the 400 envelope.
	defer func() {
		if rec := recover(); rec != nil {
			err, ok := rec.(error)
			if !ok {
				err = errors.New(msgUnknownError)
			}
			h.reject(c, &input, err)
		}
	}()

	// An empty body is an empty submission and fails validation like one.
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		h.reject(c, &input, err)
		return
	}

	candidate, err := h.candidateUC.AddCandidate(c.Request.Context(), &input)
	if err != nil {
		h.reject(c, &input, err)
		return
	}

	h.audit.LogCandidateSaved(c.Request.Context(), candidate.ID, !input.IsEdit(), c.ClientIP(), response.RequestID(c))
	response.Success(c, http.StatusCreated, msgCandidateAdded, candidate)
}

func (h *CandidateHandler) reject(c *gin.Context, input *domain.CandidateInput, err error) {
	event := security.EventIntakeFailed
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		event = security.EventValidationFailed
	case apperror.KindDuplicate:
		event = security.EventDuplicateEmail
	}
	h.audit.LogIntakeRejected(c.Request.Context(), event, input.Email.Value, c.ClientIP(),
		c.GetHeader("User-Agent"), response.RequestID(c), err.Error())

	message := err.Error()
	if message == "" {
		message = msgUnknownError
	}
	response.Error(c, http.StatusBadRequest, msgAddFailed, message)
}

// GetCandidate godoc
// @Summary      Get a candidate
// @Description  Returns the stored candidate with its educations, work experiences and resumes
// @Tags         candidates
// @Produce      json
// @Param        id   path      int  true  "Candidate ID"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid candidate id"))
		return
	}

	candidate, err := h.candidateUC.GetCandidate(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate found", candidate)
}
