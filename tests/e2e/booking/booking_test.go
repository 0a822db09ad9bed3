//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"hospedagem-api/internal/handler/dto/request"
	"hospedagem-api/internal/handler/dto/response"
	"hospedagem-api/tests/common/authtest"
	"hospedagem-api/tests/common/dbtest"
	"hospedagem-api/tests/common/httptest"
	"hospedagem-api/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL  = "/api/bookings"
	occupancyURL = "/api/occupancy"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func fmtDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func intp(n int) *int { return &n }

func (s *BookingSuite) TestCreateBooking() {
	checkIn := time.Now().AddDate(0, 0, 30)
	checkOut := checkIn.AddDate(0, 0, 2)

	s.Run("Normal case: whole-room booking is created and readable", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, 101, 4, "terreo")
		clientID := dbtest.CreateTestClient(t, s.DB, "Maria Souza", "12345678901", "11987654321")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "ana.recepcao", "funcionario")

		reqBody := request.CreateBookingRequest{
			RoomID:   roomID,
			ClientID: clientID,
			CheckIn:  fmtDate(checkIn),
			CheckOut: fmtDate(checkOut),
			Mode:     "whole_room",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, created.ID)

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, dw.Code)

		var actual response.BookingResponse
		err = httptest.DecodeResponseBody(t, dw.Body, &actual)
		require.NoError(t, err)

		expected := &response.BookingResponse{
			RoomID:     roomID,
			RoomNumber: 101,
			ClientID:   clientID,
			ClientName: "Maria Souza",
			Mode:       "whole_room",
			CheckIn:    fmtDate(checkIn),
			CheckOut:   fmtDate(checkOut),
			Status:     "reserved",
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: overlapping whole-room booking is refused", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, 101, 4, "terreo")
		clientID := dbtest.CreateTestClient(t, s.DB, "Maria Souza", "12345678901", "11987654321")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "ana.recepcao", "funcionario")

		dbtest.CreateTestBooking(t, s.DB, roomID, clientID, checkIn, checkOut, "whole_room", nil, "reserved")

		reqBody := request.CreateBookingRequest{
			RoomID:   roomID,
			ClientID: clientID,
			CheckIn:  fmtDate(checkIn.AddDate(0, 0, 1)),
			CheckOut: fmtDate(checkOut.AddDate(0, 0, 1)),
			Mode:     "whole_room",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		httptest.AssertConflictReason(t, w, "room unavailable")
	})

	s.Run("Normal case: back-to-back periods do not conflict", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, 101, 4, "terreo")
		clientID := dbtest.CreateTestClient(t, s.DB, "Maria Souza", "12345678901", "11987654321")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "ana.recepcao", "funcionario")

		dbtest.CreateTestBooking(t, s.DB, roomID, clientID, checkIn, checkOut, "whole_room", nil, "reserved")

		reqBody := request.CreateBookingRequest{
			RoomID:   roomID,
			ClientID: clientID,
			CheckIn:  fmtDate(checkOut),
			CheckOut: fmtDate(checkOut.AddDate(0, 0, 2)),
			Mode:     "whole_room",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Error case: per-bed demand above capacity is refused", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, 201, 2, "segundo andar")
		clientID := dbtest.CreateTestClient(t, s.DB, "Maria Souza", "12345678901", "11987654321")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "ana.recepcao", "funcionario")

		dbtest.CreateTestBooking(t, s.DB, roomID, clientID, checkIn, checkOut, "per_bed", intp(1), "reserved")

		reqBody := request.CreateBookingRequest{
			RoomID:   roomID,
			ClientID: clientID,
			CheckIn:  fmtDate(checkIn),
			CheckOut: fmtDate(checkOut),
			Mode:     "per_bed",
			Beds:     intp(2),
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		httptest.AssertConflictReason(t, w, "not enough free beds")

		reqBody.Beds = intp(1)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Error case: past check-in is rejected", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, 101, 4, "terreo")
		clientID := dbtest.CreateTestClient(t, s.DB, "Maria Souza", "12345678901", "11987654321")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "ana.recepcao", "funcionario")

		reqBody := request.CreateBookingRequest{
			RoomID:   roomID,
			ClientID: clientID,
			CheckIn:  fmtDate(time.Now().AddDate(0, 0, -3)),
			CheckOut: fmtDate(time.Now().AddDate(0, 0, -1)),
			Mode:     "whole_room",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "past")
	})

	s.Run("Error case: unknown room returns 404", func() {
		t := s.T()

		clientID := dbtest.CreateTestClient(t, s.DB, "Maria Souza", "12345678901", "11987654321")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "ana.recepcao", "funcionario")

		reqBody := request.CreateBookingRequest{
			RoomID:   uuid.New(),
			ClientID: clientID,
			CheckIn:  fmtDate(checkIn),
			CheckOut: fmtDate(checkOut),
			Mode:     "whole_room",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Room not found")
	})

	s.Run("Error case: unauthenticated request is refused", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *BookingSuite) TestLifecycle() {
	checkIn := time.Now().AddDate(0, 0, 10)
	checkOut := checkIn.AddDate(0, 0, 2)

	transitionURL := func(id uuid.UUID, action string) string {
		return fmt.Sprintf("%s/%s/%s", bookingsURL, id, action)
	}

	s.Run("Normal case: reserved bookings move through check-in and check-out", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, 101, 4, "terreo")
		clientID := dbtest.CreateTestClient(t, s.DB, "Maria Souza", "12345678901", "11987654321")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "ana.recepcao", "funcionario")

		id := dbtest.CreateTestBooking(t, s.DB, roomID, clientID, checkIn, checkOut, "whole_room", nil, "reserved")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, transitionURL(id, "checkin"), nil, token)
		var afterCheckIn response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &afterCheckIn)
		require.Equal(t, "active", afterCheckIn.Status)
		require.NotNil(t, afterCheckIn.CheckedIn)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, transitionURL(id, "checkout"), nil, token)
		var afterCheckOut response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &afterCheckOut)
		require.Equal(t, "finalized", afterCheckOut.Status)
		require.NotNil(t, afterCheckOut.CheckedOut)
	})

	s.Run("Error case: active bookings cannot be canceled", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, 101, 4, "terreo")
		clientID := dbtest.CreateTestClient(t, s.DB, "Maria Souza", "12345678901", "11987654321")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "ana.recepcao", "funcionario")

		id := dbtest.CreateTestBooking(t, s.DB, roomID, clientID, checkIn, checkOut, "whole_room", nil, "active")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, transitionURL(id, "cancel"), nil, token)
		httptest.AssertConflictReason(t, w, "already checked in")
	})

	s.Run("Normal case: canceled bookings can be reinstated while capacity holds", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, 101, 4, "terreo")
		clientID := dbtest.CreateTestClient(t, s.DB, "Maria Souza", "12345678901", "11987654321")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "ana.recepcao", "funcionario")

		id := dbtest.CreateTestBooking(t, s.DB, roomID, clientID, checkIn, checkOut, "whole_room", nil, "canceled")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, transitionURL(id, "reinstate"), nil, token)
		var reinstated response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &reinstated)
		require.Equal(t, "reserved", reinstated.Status)
		require.Nil(t, reinstated.CheckedIn)
		require.Nil(t, reinstated.CheckedOut)
	})

	s.Run("Error case: reinstating fails after the capacity was taken", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, 101, 4, "terreo")
		clientID := dbtest.CreateTestClient(t, s.DB, "Maria Souza", "12345678901", "11987654321")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "ana.recepcao", "funcionario")

		id := dbtest.CreateTestBooking(t, s.DB, roomID, clientID, checkIn, checkOut, "whole_room", nil, "canceled")
		dbtest.CreateTestBooking(t, s.DB, roomID, clientID, checkIn, checkOut, "whole_room", nil, "reserved")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, transitionURL(id, "reinstate"), nil, token)
		httptest.AssertConflictReason(t, w, "room unavailable")
	})

	s.Run("Normal case: reserved bookings can be deleted, active ones cannot", func() {
		t := s.T()

		roomID := dbtest.CreateTestRoom(t, s.DB, 101, 4, "terreo")
		clientID := dbtest.CreateTestClient(t, s.DB, "Maria Souza", "12345678901", "11987654321")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "ana.recepcao", "funcionario")

		reservedID := dbtest.CreateTestBooking(t, s.DB, roomID, clientID, checkIn, checkOut, "whole_room", nil, "reserved")
		activeID := dbtest.CreateTestBooking(t, s.DB, roomID, clientID, checkOut, checkOut.AddDate(0, 0, 2), "whole_room", nil, "active")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+reservedID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+activeID.String(), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "reserved or canceled")
	})
}

func (s *BookingSuite) TestOccupancyReport() {
	day := time.Now().AddDate(0, 0, 15)

	s.Run("Normal case: the report classifies rooms by occupied beds", func() {
		t := s.T()

		freeRoom := dbtest.CreateTestRoom(t, s.DB, 101, 4, "terreo")
		partialRoom := dbtest.CreateTestRoom(t, s.DB, 102, 4, "terreo")
		fullRoom := dbtest.CreateTestRoom(t, s.DB, 201, 2, "segundo andar")
		clientID := dbtest.CreateTestClient(t, s.DB, "Maria Souza", "12345678901", "11987654321")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "ana.recepcao", "funcionario")

		dbtest.CreateTestBooking(t, s.DB, partialRoom, clientID, day, day.AddDate(0, 0, 2), "per_bed", intp(2), "reserved")
		dbtest.CreateTestBooking(t, s.DB, fullRoom, clientID, day, day.AddDate(0, 0, 2), "whole_room", nil, "active")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, occupancyURL+"?date="+fmtDate(day), nil, token)
		var report response.OccupancyReportResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &report)

		require.Len(t, report.Rooms, 3)
		byRoom := make(map[uuid.UUID]*response.RoomOccupancyResponse)
		for _, r := range report.Rooms {
			byRoom[r.RoomID] = r
		}

		require.Equal(t, "free", byRoom[freeRoom].Status)
		require.Equal(t, 4, byRoom[freeRoom].FreeBeds)

		require.Equal(t, "partially_occupied", byRoom[partialRoom].Status)
		require.Equal(t, 2, byRoom[partialRoom].OccupiedBeds)

		require.Equal(t, "fully_occupied", byRoom[fullRoom].Status)
		require.Equal(t, 0, byRoom[fullRoom].FreeBeds)
	})

	s.Run("Normal case: status filter narrows the report", func() {
		t := s.T()

		dbtest.CreateTestRoom(t, s.DB, 101, 4, "terreo")
		fullRoom := dbtest.CreateTestRoom(t, s.DB, 201, 2, "segundo andar")
		clientID := dbtest.CreateTestClient(t, s.DB, "Maria Souza", "12345678901", "11987654321")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "ana.recepcao", "funcionario")

		dbtest.CreateTestBooking(t, s.DB, fullRoom, clientID, day, day.AddDate(0, 0, 2), "whole_room", nil, "reserved")

		url := occupancyURL + "?date=" + fmtDate(day) + "&status=fully_occupied"
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		var report response.OccupancyReportResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &report)

		require.Len(t, report.Rooms, 1)
		require.Equal(t, fullRoom, report.Rooms[0].RoomID)
	})

	s.Run("Error case: dashboard summary needs gerente role", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "ana.recepcao", "funcionario")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/dashboard/summary", nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)

		managerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "joao.gerente", "gerente")
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/dashboard/summary", nil, managerToken)

		var summary response.DashboardSummaryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &summary)
		require.Equal(t, 0, summary.TotalRooms)
	})
}
