package controllers

import (
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type HolidayController struct {
	Log            *zap.Logger
	HolidayUsecase contracts.HolidayUsecase
	Timeout        time.Duration
}

func NewHolidayController(logger *zap.Logger, holidayUsecase contracts.HolidayUsecase, timeout time.Duration) *HolidayController {
	return &HolidayController{
		Log:            logger,
		HolidayUsecase: holidayUsecase,
		Timeout:        timeout,
	}
}

func (ctrl *HolidayController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := requestScope(ctrl.Log, w, r, "HolidayController.FindAll")
	if !ok {
		return
	}
	ctrl.Log.Info("HolidayController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.HolidayUsecase.List(ctx, session.AccessToken)
	if err != nil {
		ctrl.Log.Error("HolidayController.FindAll HolidayUsecase.List error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("HolidayController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHolidaysSuccessMessage, response)
}
