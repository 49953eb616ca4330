package emergencycontacts

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

type EmergencyContactController struct {
	Log                     *zap.Logger
	EmergencyContactUsecase contracts.EmergencyContactUsecase
}

func NewEmergencyContactController(logger *zap.Logger, contactUsecase contracts.EmergencyContactUsecase) *EmergencyContactController {
	return &EmergencyContactController{
		Log:                     logger,
		EmergencyContactUsecase: contactUsecase,
	}
}

func (ctrl *EmergencyContactController) CreateContact(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	request := new(requests.CreateEmergencyContact)
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

	result, err := ctrl.EmergencyContactUsecase.CreateContact(ctx, sessionData, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateEmergencyContactSuccessMessage, result)
}

func (ctrl *EmergencyContactController) ListContacts(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.EmergencyContactUsecase.ListContacts(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListEmergencyContactsSuccessMessage, result)
}

func (ctrl *EmergencyContactController) FindContactByID(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	contactID := chi.URLParam(r, "contact_id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.EmergencyContactUsecase.FindContactByID(ctx, sessionData, contactID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetEmergencyContactSuccessMessage, result)
}

func (ctrl *EmergencyContactController) UpdateContactByID(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	request := new(requests.UpdateEmergencyContact)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ContactID = chi.URLParam(r, "contact_id")

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.EmergencyContactUsecase.UpdateContact(ctx, sessionData, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateEmergencyContactSuccessMessage, result)
}

func (ctrl *EmergencyContactController) DeleteContactByID(w http.ResponseWriter, r *http.Request) {
	sessionData := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	contactID := chi.URLParam(r, "contact_id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.EmergencyContactUsecase.DeleteContactByID(ctx, sessionData, contactID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteEmergencyContactSuccessMessage, nil)
}
