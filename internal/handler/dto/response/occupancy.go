package response

import (
	"hospedagem-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomOccupancyResponse struct {
	RoomID       uuid.UUID `json:"room_id"`
	Number       int       `json:"number"`
	Group        string    `json:"group"`
	Capacity     int       `json:"capacity"`
	OccupiedBeds int       `json:"occupied_beds"`
	FreeBeds     int       `json:"free_beds"`
	Status       string    `json:"status"`
}

type OccupancyReportResponse struct {
	Date  string                   `json:"date"`
	Rooms []*RoomOccupancyResponse `json:"rooms"`
}

type DashboardSummaryResponse struct {
	TotalRooms        int `json:"total_rooms"`
	FreeRooms         int `json:"free_rooms"`
	PartiallyOccupied int `json:"partially_occupied_rooms"`
	FullyOccupied     int `json:"fully_occupied_rooms"`
	ExpectedCheckIns  int `json:"expected_check_ins"`
	ExpectedCheckOuts int `json:"expected_check_outs"`
	ActiveClients     int `json:"active_clients"`
}

func FromOccupancyViews(date string, views []*queries.RoomOccupancyView) *OccupancyReportResponse {
	rooms := make([]*RoomOccupancyResponse, len(views))
	for i, v := range views {
		rooms[i] = &RoomOccupancyResponse{
			RoomID:       v.RoomID,
			Number:       v.Number,
			Group:        v.Group,
			Capacity:     v.Capacity,
			OccupiedBeds: v.OccupiedBeds,
			FreeBeds:     v.FreeBeds,
			Status:       v.Status,
		}
	}
	return &OccupancyReportResponse{Date: date, Rooms: rooms}
}

func FromDashboardSummary(s *queries.DashboardSummary) *DashboardSummaryResponse {
	return &DashboardSummaryResponse{
		TotalRooms:        s.TotalRooms,
		FreeRooms:         s.FreeRooms,
		PartiallyOccupied: s.PartiallyOccupied,
		FullyOccupied:     s.FullyOccupied,
		ExpectedCheckIns:  s.ExpectedCheckIns,
		ExpectedCheckOuts: s.ExpectedCheckOuts,
		ActiveClients:     s.ActiveClients,
	}
}
