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

type AvailabilityController struct {
	Log      *zap.Logger
	Registry contracts.ScheduleRegistry
	Timeout  time.Duration
}

func NewAvailabilityController(logger *zap.Logger, registry contracts.ScheduleRegistry, timeout time.Duration) *AvailabilityController {
	return &AvailabilityController{
		Log:      logger,
		Registry: registry,
		Timeout:  timeout,
	}
}

// FindAll lists availability entries. With ?doctor_id= only that doctor's
// entries and the ones that apply to every doctor are kept.
func (ctrl *AvailabilityController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := requestScope(ctrl.Log, w, r, "AvailabilityController.FindAll")
	if !ok {
		return
	}

	filter := requests.AvailabilityFilter{DoctorID: r.URL.Query().Get(constvars.URLQueryParamDoctorID)}
	ctrl.Log.Info("AvailabilityController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, filter.DoctorID))

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	vm := ctrl.Registry.ForSession(session.SessionID)
	if err := vm.Refresh(ctx); err != nil {
		ctrl.Log.Error("AvailabilityController.FindAll ViewModel.Refresh error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	response := schedule.FilterByDoctor(vm.Snapshot().Availability, filter.DoctorID)

	ctrl.Log.Info("AvailabilityController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccessMessage, response)
}

func (ctrl *AvailabilityController) CreateAvailability(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := requestScope(ctrl.Log, w, r, "AvailabilityController.CreateAvailability")
	if !ok {
		return
	}
	ctrl.Log.Info("AvailabilityController.CreateAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.Availability)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("AvailabilityController.CreateAvailability error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	vm := ctrl.Registry.ForSession(session.SessionID)
	if vm.Snapshot().RefreshedAt.IsZero() {
		// holidays are needed to reject non-working days
		if err := vm.Refresh(ctx); err != nil {
			ctrl.Log.Error("AvailabilityController.CreateAvailability ViewModel.Refresh error",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err))
			writeUsecaseError(ctrl.Log, w, err)
			return
		}
	}

	response, err := vm.CreateAvailability(ctx, request)
	if err != nil {
		ctrl.Log.Error("AvailabilityController.CreateAvailability ViewModel.CreateAvailability error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AvailabilityController.CreateAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, response.GetID()))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAvailabilitySuccessMessage, response)
}

func (ctrl *AvailabilityController) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := requestScope(ctrl.Log, w, r, "AvailabilityController.UpdateAvailability")
	if !ok {
		return
	}

	entryID := chi.URLParam(r, constvars.URLParamID)
	if entryID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamID))
		return
	}
	ctrl.Log.Info("AvailabilityController.UpdateAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, entryID))

	request := new(requests.Availability)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("AvailabilityController.UpdateAvailability error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.Registry.ForSession(session.SessionID).UpdateAvailability(ctx, entryID, request)
	if err != nil {
		ctrl.Log.Error("AvailabilityController.UpdateAvailability ViewModel.UpdateAvailability error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AvailabilityController.UpdateAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, entryID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAvailabilitySuccessMessage, response)
}

func (ctrl *AvailabilityController) DeleteAvailability(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := requestScope(ctrl.Log, w, r, "AvailabilityController.DeleteAvailability")
	if !ok {
		return
	}

	entryID := chi.URLParam(r, constvars.URLParamID)
	if entryID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamID))
		return
	}
	ctrl.Log.Info("AvailabilityController.DeleteAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, entryID))

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	if err := ctrl.Registry.ForSession(session.SessionID).DeleteAvailability(ctx, entryID); err != nil {
		ctrl.Log.Error("AvailabilityController.DeleteAvailability ViewModel.DeleteAvailability error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AvailabilityController.DeleteAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, entryID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAvailabilitySuccessMessage, nil)
}
