package controllers

import (
	"clinicbook-service/internal/app/contracts"
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

type AppointmentController struct {
	Log      *zap.Logger
	Registry contracts.ScheduleRegistry
	Timeout  time.Duration
}

func NewAppointmentController(logger *zap.Logger, registry contracts.ScheduleRegistry, timeout time.Duration) *AppointmentController {
	return &AppointmentController{
		Log:      logger,
		Registry: registry,
		Timeout:  timeout,
	}
}

// FindAll lists the session's appointments, narrowed to one day when ?date= is given.
func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := requestScope(ctrl.Log, w, r, "AppointmentController.FindAll")
	if !ok {
		return
	}

	filter := requests.AppointmentFilter{Date: r.URL.Query().Get(constvars.URLQueryParamDate)}
	ctrl.Log.Info("AppointmentController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, filter.Date))

	vm := ctrl.Registry.ForSession(session.SessionID)
	if filter.Date != "" {
		if err := vm.SelectDate(filter.Date); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	if err := vm.Refresh(ctx); err != nil {
		ctrl.Log.Error("AppointmentController.FindAll ViewModel.Refresh error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	response := vm.Snapshot().Appointments
	if filter.Date != "" {
		response = vm.AppointmentsForSelectedDate()
	}

	ctrl.Log.Info("AppointmentController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, response)
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := requestScope(ctrl.Log, w, r, "AppointmentController.CreateAppointment")
	if !ok {
		return
	}
	ctrl.Log.Info("AppointmentController.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.Appointment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.Registry.ForSession(session.SessionID).CreateAppointment(ctx, request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment ViewModel.CreateAppointment error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, response.GetID()))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := requestScope(ctrl.Log, w, r, "AppointmentController.UpdateAppointment")
	if !ok {
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamID)
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamID))
		return
	}
	ctrl.Log.Info("AppointmentController.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, appointmentID))

	request := new(requests.Appointment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("AppointmentController.UpdateAppointment error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.Registry.ForSession(session.SessionID).UpdateAppointment(ctx, appointmentID, request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.UpdateAppointment ViewModel.UpdateAppointment error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.UpdateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, appointmentID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := requestScope(ctrl.Log, w, r, "AppointmentController.DeleteAppointment")
	if !ok {
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamID)
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamID))
		return
	}
	ctrl.Log.Info("AppointmentController.DeleteAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, appointmentID))

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	if err := ctrl.Registry.ForSession(session.SessionID).DeleteAppointment(ctx, appointmentID); err != nil {
		ctrl.Log.Error("AppointmentController.DeleteAppointment ViewModel.DeleteAppointment error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.DeleteAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, appointmentID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAppointmentSuccessMessage, nil)
}
