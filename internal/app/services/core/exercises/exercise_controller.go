package exercises

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

type ExerciseController struct {
	Log             *zap.Logger
	ExerciseUsecase contracts.ExerciseUsecase
}

func NewExerciseController(logger *zap.Logger, exerciseUsecase contracts.ExerciseUsecase) *ExerciseController {
	return &ExerciseController{
		Log:             logger,
		ExerciseUsecase: exerciseUsecase,
	}
}

func (ctrl *ExerciseController) CreateExercise(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateExercise)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ExerciseUsecase.CreateExercise(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateExerciseSuccessMessage, result)
}

// ListExercises accepts an optional muscle query parameter so clients can
// browse the catalog per muscle group.
func (ctrl *ExerciseController) ListExercises(w http.ResponseWriter, r *http.Request) {
	request := &requests.ListExercises{
		MuscleID: r.URL.Query().Get(constvars.QueryParamMuscle),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ExerciseUsecase.ListExercises(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListExercisesSuccessMessage, result)
}

func (ctrl *ExerciseController) FindExerciseByID(w http.ResponseWriter, r *http.Request) {
	exerciseID := chi.URLParam(r, "exercise_id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ExerciseUsecase.FindExerciseByID(ctx, exerciseID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetExerciseSuccessMessage, result)
}

func (ctrl *ExerciseController) UpdateExerciseByID(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateExercise)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ExerciseID = chi.URLParam(r, "exercise_id")

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ExerciseUsecase.UpdateExercise(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateExerciseSuccessMessage, result)
}

func (ctrl *ExerciseController) DeleteExerciseByID(w http.ResponseWriter, r *http.Request) {
	exerciseID := chi.URLParam(r, "exercise_id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.ExerciseUsecase.DeleteExerciseByID(ctx, exerciseID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteExerciseSuccessMessage, nil)
}
