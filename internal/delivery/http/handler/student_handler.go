package handler

import (
	"encoding/json"
	"net/http"

	"student-recommendation-platform/internal/delivery/dto"
	"student-recommendation-platform/internal/domain/entity"
	"student-recommendation-platform/internal/usecase"
	"student-recommendation-platform/pkg/response"
	"student-recommendation-platform/pkg/validator"
)

type StudentHandler struct {
	intakeUsecase usecase.StudentIntakeUsecase
	validator     *validator.CustomValidator
}

func NewStudentHandler(intakeUsecase usecase.StudentIntakeUsecase, validator *validator.CustomValidator) *StudentHandler {
	return &StudentHandler{
		intakeUsecase: intakeUsecase,
		validator:     validator,
	}
}

// Submit handles a student profile submission
// @Summary Submit a student profile
// @Description Validate the profile, generate a learning recommendation and upsert the profile by name
// @Tags Students
// @Accept json
// @Produce json
// @Param request body dto.StudentSubmitRequest true "Student Submit Request"
// @Success 200 {object} response.Response
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /students [post]
func (h *StudentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.StudentSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.intakeUsecase.Submit(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAdvisorUnavailable:
			response.BadGateway(w, "Recommendation service is unavailable, please try again")
		case usecase.ErrDuplicateName:
			response.Conflict(w, "A profile with this name already exists")
		case usecase.ErrStoreUnavailable:
			response.BadGateway(w, "Student store is unavailable, please try again")
		default:
			response.InternalServerError(w, "Failed to submit profile")
		}
		return
	}

	if result.Created {
		response.Success(w, http.StatusCreated, "New student profile created", result)
		return
	}
	response.Success(w, http.StatusOK, "Student profile updated", result)
}

// GetAll handles listing every stored profile
// @Summary List all student profiles
// @Description Return every stored profile in store order
// @Tags Students
// @Produce json
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /students [get]
func (h *StudentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	students, err := h.intakeUsecase.ListAll(r.Context())
	if err != nil {
		response.BadGateway(w, "Student store is unavailable, please try again")
		return
	}

	response.Success(w, http.StatusOK, "Students retrieved successfully", dto.StudentListResponse{Students: students})
}

// GetCatalog handles listing the fixed form option sets
// @Summary Get intake form catalogs
// @Description Return the fixed option sets the intake form renders
// @Tags Students
// @Produce json
// @Success 200 {object} response.Response
// @Router /catalog [get]
func (h *StudentHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	catalog := dto.CatalogResponse{
		Genders:           []string{entity.GenderMale, entity.GenderFemale, entity.GenderOther},
		EducationLevels:   entity.EducationLevels,
		FieldsOfStudy:     entity.FieldsOfStudy,
		TechnicalSkills:   entity.TechnicalSkillCatalog,
		LearningInterests: entity.LearningInterestCatalog,
	}

	response.Success(w, http.StatusOK, "Catalog retrieved successfully", catalog)
}
