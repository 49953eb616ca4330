package muscles

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

type MuscleController struct {
	Log           *zap.Logger
	MuscleUsecase contracts.MuscleUsecase
}

func NewMuscleController(logger *zap.Logger, muscleUsecase contracts.MuscleUsecase) *MuscleController {
	return &MuscleController{
		Log:           logger,
		MuscleUsecase: muscleUsecase,
	}
}

func (ctrl *MuscleController) CreateMuscle(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateMuscle)
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

	result, err := ctrl.MuscleUsecase.CreateMuscle(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateMuscleSuccessMessage, result)
}

func (ctrl *MuscleController) ListMuscles(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MuscleUsecase.ListMuscles(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListMusclesSuccessMessage, result)
}

func (ctrl *MuscleController) FindMuscleByID(w http.ResponseWriter, r *http.Request) {
	muscleID := chi.URLParam(r, "muscle_id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MuscleUsecase.FindMuscleByID(ctx, muscleID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMuscleSuccessMessage, result)
}

func (ctrl *MuscleController) UpdateMuscleByID(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateMuscle)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.MuscleID = chi.URLParam(r, "muscle_id")

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MuscleUsecase.UpdateMuscle(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateMuscleSuccessMessage, result)
}

func (ctrl *MuscleController) DeleteMuscleByID(w http.ResponseWriter, r *http.Request) {
	muscleID := chi.URLParam(r, "muscle_id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.MuscleUsecase.DeleteMuscleByID(ctx, muscleID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteMuscleSuccessMessage, nil)
}
