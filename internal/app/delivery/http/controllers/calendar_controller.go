package controllers

import (
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/dto/responses"
	"clinicbook-service/internal/pkg/exceptions"
	"clinicbook-service/internal/pkg/utils"
	"context"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type CalendarController struct {
	Log      *zap.Logger
	Registry contracts.ScheduleRegistry
	Timeout  time.Duration
}

func NewCalendarController(logger *zap.Logger, registry contracts.ScheduleRegistry, timeout time.Duration) *CalendarController {
	return &CalendarController{
		Log:      logger,
		Registry: registry,
		Timeout:  timeout,
	}
}

// Calendar refreshes the session's view-model and renders the selected day.
// When the scheduling api cannot be reached the last loaded lists are served
// with an offline or error status.
func (ctrl *CalendarController) Calendar(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := requestScope(ctrl.Log, w, r, "CalendarController.Calendar")
	if !ok {
		return
	}

	query, err := parseCalendarQuery(r)
	if err != nil {
		ctrl.Log.Error("CalendarController.Calendar error parsing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("CalendarController.Calendar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, query.Date),
		zap.String(constvars.LoggingDoctorIDKey, query.DoctorID),
		zap.Bool(constvars.URLQueryParamExpand, query.Expand))

	vm := ctrl.Registry.ForSession(session.SessionID)
	if query.Date != "" {
		if err := vm.SelectDate(query.Date); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	message := constvars.GetCalendarSuccessMessage
	if err := vm.Refresh(ctx); err != nil {
		if exceptions.IsUnauthenticated(err) {
			writeUsecaseError(ctrl.Log, w, err)
			return
		}
		ctrl.Log.Warn("CalendarController.Calendar serving last loaded calendar",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		message = constvars.GetStaleCalendarSuccessMessage
	}

	view := vm.Calendar(models.CalendarOptions{
		DoctorID: query.DoctorID,
		Expand:   query.Expand,
		From:     query.From,
		To:       query.To,
	})

	ctrl.Log.Info("CalendarController.Calendar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatusKey, string(view.Status)),
		zap.Int(constvars.LoggingResponseLengthKey, len(view.Markings)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, view)
}

// CheckDay answers whether availability could be created on a day. Holidays
// are loaded once if the view-model has never been refreshed.
func (ctrl *CalendarController) CheckDay(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := requestScope(ctrl.Log, w, r, "CalendarController.CheckDay")
	if !ok {
		return
	}

	request := requests.CheckDay{Date: r.URL.Query().Get(constvars.URLQueryParamDate)}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("CalendarController.CheckDay validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	ctrl.Log.Info("CalendarController.CheckDay called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, request.Date))

	vm := ctrl.Registry.ForSession(session.SessionID)
	if vm.Snapshot().RefreshedAt.IsZero() {
		ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
		defer cancel()
		if err := vm.Refresh(ctx); err != nil {
			ctrl.Log.Error("CalendarController.CheckDay ViewModel.Refresh error",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err))
			writeUsecaseError(ctrl.Log, w, err)
			return
		}
	}

	blockable, reason := vm.IsBlockableDay(request.Date)
	response := responses.DayCheck{
		Date:      request.Date,
		Blockable: blockable,
		Reason:    reason,
	}

	ctrl.Log.Info("CalendarController.CheckDay succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingSuccessKey, blockable))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CheckDaySuccessMessage, response)
}

func parseCalendarQuery(r *http.Request) (*requests.CalendarQuery, error) {
	values := r.URL.Query()
	query := &requests.CalendarQuery{
		Date:     values.Get(constvars.URLQueryParamDate),
		DoctorID: values.Get(constvars.URLQueryParamDoctorID),
		From:     values.Get(constvars.URLQueryParamFrom),
		To:       values.Get(constvars.URLQueryParamTo),
	}
	if raw := values.Get(constvars.URLQueryParamExpand); raw != "" {
		expand, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		query.Expand = expand
	}
	if err := utils.ValidateStruct(query); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return query, nil
}
