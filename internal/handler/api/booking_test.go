//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"hospedagem-api/internal/domain/booking"
	"hospedagem-api/internal/handler/api"
	reqdto "hospedagem-api/internal/handler/dto/request"
	resdto "hospedagem-api/internal/handler/dto/response"
	"hospedagem-api/internal/usecase/commands"
	"hospedagem-api/internal/usecase/queries"
	"hospedagem-api/tests/common/httptest"
	commandsmock "hospedagem-api/tests/mock/commands"
	queriesmock "hospedagem-api/tests/mock/queries"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings", s.handler.List)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.POST("/bookings/:id/checkin", s.handler.CheckIn)
	s.router.POST("/bookings/:id/checkout", s.handler.CheckOut)
	s.router.POST("/bookings/:id/cancel", s.handler.Cancel)
	s.router.POST("/bookings/:id/reinstate", s.handler.Reinstate)
	s.router.DELETE("/bookings/:id", s.handler.Delete)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func sampleView() *queries.BookingView {
	return &queries.BookingView{
		ID:         uuid.New(),
		RoomID:     uuid.New(),
		RoomNumber: 101,
		ClientID:   uuid.New(),
		ClientName: "Maria Souza",
		Mode:       "whole_room",
		CheckIn:    time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Status:     "reserved",
	}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	reqBody := reqdto.CreateBookingRequest{
		RoomID:   uuid.New(),
		ClientID: uuid.New(),
		CheckIn:  "2026-09-10",
		CheckOut: "2026-09-12",
		Mode:     "whole_room",
	}

	s.Run("success: returns 201 with the booking view", func() {
		view := sampleView()
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("2026-09-10", response.CheckIn)
		s.Equal("2026-09-12", response.CheckOut)
		s.Equal("reserved", response.Status)
	})

	s.Run("error: 409 with reason when the room is taken", func() {
		err := errors.Mark(booking.ErrRoomUnavailable, commands.ErrBookingConflict)
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(nil, err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertConflictReason(s.T(), rec, "room unavailable")
	})

	s.Run("error: 409 with reason when beds run out", func() {
		err := errors.Mark(booking.ErrInsufficientBeds, commands.ErrBookingConflict)
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(nil, err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertConflictReason(s.T(), rec, "not enough free beds")
	})

	s.Run("error: 404 when the room does not exist", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(nil, commands.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("error: 422 on a past check-in", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(nil, commands.ErrPastCheckIn).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "past")
	})

	s.Run("error: 400 on malformed date", func() {
		bad := reqBody
		bad.CheckIn = "10/09/2026"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on unknown mode", func() {
		bad := reqBody
		bad.Mode = "suite"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: forwards filters", func() {
		roomID := uuid.New()
		expected := queries.BookingFilter{RoomID: &roomID}
		s.mockQueries.EXPECT().List(gomock.Any(), expected).Return([]*queries.BookingView{sampleView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?room_id="+roomID.String(), nil, "")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 400 on invalid status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?status=pending", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "status")
	})

	s.Run("error: 400 on invalid room_id filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?room_id=abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "room_id")
	})
}

func (s *BookingHandlerTestSuite) TestTransitions() {
	transitions := []struct {
		path       string
		transition booking.Transition
	}{
		{"checkin", booking.TransitionCheckIn},
		{"checkout", booking.TransitionCheckOut},
		{"cancel", booking.TransitionCancel},
		{"reinstate", booking.TransitionReinstate},
	}

	for _, tt := range transitions {
		s.Run("success: "+tt.path+" returns the updated view", func() {
			view := sampleView()
			s.mockCommands.EXPECT().ApplyTransition(gomock.Any(), view.ID, tt.transition).Return(view, nil).Times(1)

			url := fmt.Sprintf("/bookings/%s/%s", view.ID, tt.path)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

			var response resdto.BookingResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
			s.Equal(view.ID, response.ID)
		})
	}

	s.Run("error: 409 with reason on an invalid transition", func() {
		id := uuid.New()
		err := errors.Mark(booking.ErrNotReserved, commands.ErrInvalidTransition)
		s.mockCommands.EXPECT().ApplyTransition(gomock.Any(), id, booking.TransitionCheckIn).Return(nil, err).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, fmt.Sprintf("/bookings/%s/checkin", id), nil, "")
		httptest.AssertConflictReason(s.T(), rec, "not in reserved state")
	})

	s.Run("error: 404 on unknown booking", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().ApplyTransition(gomock.Any(), id, booking.TransitionCancel).Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, fmt.Sprintf("/bookings/%s/cancel", id), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when the booking is active or finalized", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(commands.ErrBookingDeleteForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "reserved or canceled")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
