package api

import (
	"net/http"

	"table-booking/internal/domain/reservation"
	reqdto "table-booking/internal/handler/dto/request"
	resdto "table-booking/internal/handler/dto/response"
	"table-booking/internal/handler/httperr"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewReservationHandler(reservationUseCase usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
	}
}

// @Summary Booking options
// @Description Occasions, guest bounds and default time slots for the booking form
// @Tags booking
// @Produce json
// @Success 200 {object} resdto.OptionsResponse
// @Router /api/booking/options [get]
func (h *ReservationHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromOptionsRM(h.reservationUseCase.Options(c.Request.Context())))
}

// @Summary Available times
// @Description Time slots offered for a date; today when date is omitted
// @Tags booking
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/availability [get]
func (h *ReservationHandler) GetAvailability(c *gin.Context) {
	rm, err := h.reservationUseCase.AvailableTimes(c.Request.Context(), c.Query("date"))
	if err != nil {
		if errs.Is(err, usecase.ErrInvalidDate) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityRM(rm))
}

// @Summary Start booking session
// @Description Open an empty booking form
// @Tags booking
// @Produce json
// @Success 201 {object} resdto.SessionResponse
// @Router /api/booking/sessions [post]
func (h *ReservationHandler) StartSession(c *gin.Context) {
	rm, err := h.reservationUseCase.StartSession(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Header("Location", "/api/booking/sessions/"+rm.ID.String())
	c.JSON(http.StatusCreated, resdto.FromSessionRM(rm))
}

// @Summary Get booking session
// @Tags booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/booking/sessions/{id} [get]
func (h *ReservationHandler) GetSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	rm, err := h.reservationUseCase.GetSession(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionRM(rm))
}

// @Summary Update field
// @Description Store a field value; touched fields are revalidated
// @Tags booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param field path string true "date, time, guests or occasion"
// @Param request body reqdto.UpdateFieldRequest true "Field value"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/booking/sessions/{id}/fields/{field} [put]
func (h *ReservationHandler) UpdateField(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	field, ok := formField(c)
	if !ok {
		return
	}
	var req reqdto.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	rm, err := h.reservationUseCase.UpdateField(c.Request.Context(), id, field, req.Value.String())
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionRM(rm))
}

// @Summary Blur field
// @Description Mark a field touched and show its error
// @Tags booking
// @Produce json
// @Param id path string true "Session ID"
// @Param field path string true "date, time, guests or occasion"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/booking/sessions/{id}/fields/{field}/blur [post]
func (h *ReservationHandler) BlurField(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	field, ok := formField(c)
	if !ok {
		return
	}

	rm, err := h.reservationUseCase.BlurField(c.Request.Context(), id, field)
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionRM(rm))
}

// @Summary Submit booking
// @Description Validate the form and send it to the reservation backend
// @Tags booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SubmitResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/booking/sessions/{id}/submit [post]
func (h *ReservationHandler) Submit(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	rm, err := h.reservationUseCase.Submit(c.Request.Context(), id)
	if err != nil {
		var detail any
		if rm != nil {
			detail = resdto.FromSubmitResultRM(rm)
		}
		abortWithUseCaseError(c, err, detail)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubmitResultRM(rm))
}

// @Summary Reset booking form
// @Tags booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} httperr.Response
// @Router /api/booking/sessions/{id}/reset [post]
func (h *ReservationHandler) ResetSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	rm, err := h.reservationUseCase.ResetSession(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionRM(rm))
}

// @Summary Close booking session
// @Description Reset the form, abandoning any submission in flight, and forget the session
// @Tags booking
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /api/booking/sessions/{id} [delete]
func (h *ReservationHandler) CloseSession(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.reservationUseCase.CloseSession(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func formField(c *gin.Context) (reservation.Field, bool) {
	field, err := reservation.ParseField(c.Param("field"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown field", nil)
		return "", false
	}
	return field, true
}

func abortWithUseCaseError(c *gin.Context, err error, detail any) {
	switch {
	case errs.Is(err, usecase.ErrSessionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Session not found", nil)
	case errs.Is(err, reservation.ErrUnknownField):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown field", nil)
	case errs.Is(err, usecase.ErrSubmissionInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Submission already in progress", nil)
	case errs.Is(err, usecase.ErrSubmissionDiscarded):
		httperr.AbortWithError(c, http.StatusConflict, err, "Submission was discarded", detail)
	case errs.Is(err, usecase.ErrFormInvalid):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking form is invalid", detail)
	case errs.Is(err, usecase.ErrSubmissionFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, reservation.MsgSubmitFailed, detail)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
