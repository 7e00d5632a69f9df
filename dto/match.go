// file: dto/match.go
package dto

type CreateMatchReq struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
	Date     string `json:"date" binding:"required"` // DD/MM/YYYY or YYYY-MM-DD
	Time     string `json:"time" binding:"required"` // HH:MM
	VenueID  uint32 `json:"venue_id" binding:"required"`
}

type UpdateMatchReq struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

type AssignRefereeReq struct {
	RefereeID uint32 `json:"referee_id" binding:"required"`
}

type MatchResp struct {
	ID               uint32          `json:"id"`
	Name             string          `json:"name"`
	Location         string          `json:"location"`
	MatchDate        string          `json:"match_date"`
	MatchTime        string          `json:"match_time"`
	Status           string          `json:"status"`
	VenueID          uint32          `json:"venue_id"`
	VenueName        string          `json:"venue_name,omitempty"`
	RefereeID        *uint32         `json:"referee_id,omitempty"`
	RefereeName      string          `json:"referee_name,omitempty"`
	PostulationCount uint            `json:"postulation_count"`
	Postulants       []PostulantResp `json:"postulants,omitempty"`
}

type PostulantResp struct {
	RefereeID uint32 `json:"referee_id"`
	Username  string `json:"username,omitempty"`
}
