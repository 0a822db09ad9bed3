package request

type CreateRoomRequest struct {
	Number int    `json:"number" binding:"required,min=1,max=1000"`
	Beds   int    `json:"beds" binding:"required,min=1,max=6"`
	Group  string `json:"group" binding:"required,min=3,max=50"`
}

type UpdateRoomRequest struct {
	Number int    `json:"number" binding:"required,min=1,max=1000"`
	Beds   int    `json:"beds" binding:"required,min=1,max=6"`
	Group  string `json:"group" binding:"required,min=3,max=50"`
}
