package moods

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

type MoodController struct {
	Log         *zap.Logger
	MoodUsecase contracts.MoodUsecase
}

func NewMoodController(logger *zap.Logger, moodUsecase contracts.MoodUsecase) *MoodController {
	return &MoodController{
		Log:         logger,
		MoodUsecase: moodUsecase,
	}
}

func (ctrl *MoodController) CreateMood(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	request := new(requests.CreateMood)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateMoodRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MoodUsecase.CreateMood(ctx, sessionData, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateMoodSuccessMessage, result)
}

// ListMoods accepts optional from/to date query parameters (YYYY-MM-DD) so a
// user can review how their mood moved over a period.
func (ctrl *MoodController) ListMoods(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	request := &requests.ListMoods{
		FromDate: r.URL.Query().Get(constvars.QueryParamFromDate),
		ToDate:   r.URL.Query().Get(constvars.QueryParamToDate),
	}

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MoodUsecase.ListMoods(ctx, sessionData, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListMoodsSuccessMessage, result)
}

func (ctrl *MoodController) FindMoodByID(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	moodID := chi.URLParam(r, "mood_id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MoodUsecase.FindMoodByID(ctx, sessionData, moodID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMoodSuccessMessage, result)
}

func (ctrl *MoodController) UpdateMoodByID(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	request := new(requests.UpdateMood)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.MoodID = chi.URLParam(r, "mood_id")

	utils.SanitizeUpdateMoodRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MoodUsecase.UpdateMood(ctx, sessionData, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateMoodSuccessMessage, result)
}

func (ctrl *MoodController) DeleteMoodByID(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	moodID := chi.URLParam(r, "mood_id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.MoodUsecase.DeleteMoodByID(ctx, sessionData, moodID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteMoodSuccessMessage, nil)
}
