package helplines

import (
	"context"
	"encoding/json"
	"mindfit-service/internal/app/contracts"
	"mindfit-service/internal/pkg/constvars"
	"mindfit-service/internal/pkg/dto/requests"
	"mindfit-service/internal/pkg/exceptions"
	"mindfit-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HelplineController struct {
	Log             *zap.Logger
	HelplineUsecase contracts.HelplineUsecase
}

func NewHelplineController(logger *zap.Logger, helplineUsecase contracts.HelplineUsecase) *HelplineController {
	return &HelplineController{
		Log:             logger,
		HelplineUsecase: helplineUsecase,
	}
}

func (ctrl *HelplineController) CreateHelpline(w http.ResponseWriter, r *http.Request) {
	request := new(requests.HelplinePayload)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeHelplinePayload(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.HelplineUsecase.CreateHelpline(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateHelplineSuccessMessage, result)
}

// ListHelplines is the public "open now" view. Only the literal query value
// "true" switches availability filtering on.
func (ctrl *HelplineController) ListHelplines(w http.ResponseWriter, r *http.Request) {
	openNow := r.URL.Query().Get(constvars.QueryParamOpenNow) == "true"

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.HelplineUsecase.ListHelplines(ctx, openNow, time.Now())
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListHelplinesSuccessMessage, result)
}

func (ctrl *HelplineController) FindHelplineByID(w http.ResponseWriter, r *http.Request) {
	helplineID := chi.URLParam(r, "helpline_id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.HelplineUsecase.FindHelplineByID(ctx, helplineID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHelplineSuccessMessage, result)
}

func (ctrl *HelplineController) UpdateHelplineByID(w http.ResponseWriter, r *http.Request) {
	request := new(requests.HelplinePayload)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.HelplineID = chi.URLParam(r, "helpline_id")

	utils.SanitizeHelplinePayload(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.HelplineUsecase.UpdateHelpline(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateHelplineSuccessMessage, result)
}

func (ctrl *HelplineController) DeleteHelplineByID(w http.ResponseWriter, r *http.Request) {
	helplineID := chi.URLParam(r, "helpline_id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.HelplineUsecase.DeleteHelplineByID(ctx, helplineID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteHelplineSuccessMessage, nil)
}
