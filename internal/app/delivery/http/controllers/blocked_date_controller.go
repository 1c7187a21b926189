package controllers

import (
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/services/core/schedule"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/exceptions"
	"clinicbook-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BlockedDateController struct {
	Log      *zap.Logger
	Registry contracts.ScheduleRegistry
	Timeout  time.Duration
}

func NewBlockedDateController(logger *zap.Logger, registry contracts.ScheduleRegistry, timeout time.Duration) *BlockedDateController {
	return &BlockedDateController{
		Log:      logger,
		Registry: registry,
		Timeout:  timeout,
	}
}

func (ctrl *BlockedDateController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := requestScope(ctrl.Log, w, r, "BlockedDateController.FindAll")
	if !ok {
		return
	}

	doctorID := r.URL.Query().Get(constvars.URLQueryParamDoctorID)
	ctrl.Log.Info("BlockedDateController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID))

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	vm := ctrl.Registry.ForSession(session.SessionID)
	if err := vm.Refresh(ctx); err != nil {
		ctrl.Log.Error("BlockedDateController.FindAll ViewModel.Refresh error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	response := schedule.FilterByDoctor(vm.Snapshot().BlockedDates, doctorID)

	ctrl.Log.Info("BlockedDateController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBlockedDatesSuccessMessage, response)
}

func (ctrl *BlockedDateController) CreateBlockedDate(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := requestScope(ctrl.Log, w, r, "BlockedDateController.CreateBlockedDate")
	if !ok {
		return
	}
	ctrl.Log.Info("BlockedDateController.CreateBlockedDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.Availability)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("BlockedDateController.CreateBlockedDate error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.Registry.ForSession(session.SessionID).CreateBlockedDate(ctx, request)
	if err != nil {
		ctrl.Log.Error("BlockedDateController.CreateBlockedDate ViewModel.CreateBlockedDate error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BlockedDateController.CreateBlockedDate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, response.GetID()))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateBlockedDateSuccessMessage, response)
}

func (ctrl *BlockedDateController) DeleteBlockedDate(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := requestScope(ctrl.Log, w, r, "BlockedDateController.DeleteBlockedDate")
	if !ok {
		return
	}

	blockedDateID := chi.URLParam(r, constvars.URLParamID)
	if blockedDateID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamID))
		return
	}
	ctrl.Log.Info("BlockedDateController.DeleteBlockedDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, blockedDateID))

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	if err := ctrl.Registry.ForSession(session.SessionID).DeleteBlockedDate(ctx, blockedDateID); err != nil {
		ctrl.Log.Error("BlockedDateController.DeleteBlockedDate ViewModel.DeleteBlockedDate error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("BlockedDateController.DeleteBlockedDate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, blockedDateID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteBlockedDateSuccessMessage, nil)
}
