// file: mappers/match_mapper.go
package mappers

import (
	"github.com/Th3Mauryy/RefZone-sub000/dto"
	"github.com/Th3Mauryy/RefZone-sub000/models"
)

func MapMatchToResp(m models.Match) dto.MatchResp {
	resp := dto.MatchResp{
		ID:               m.ID,
		Name:             m.Name,
		Location:         m.Location,
		MatchDate:        m.MatchDate,
		MatchTime:        m.MatchTime,
		Status:           string(m.Status),
		VenueID:          m.VenueID,
		RefereeID:        m.RefereeID,
		PostulationCount: m.PostulationCount,
	}
	if m.Venue != nil {
		resp.VenueName = m.Venue.Name
	}
	if m.Referee != nil {
		resp.RefereeName = m.Referee.Username
	}
	for _, p := range m.Postulations {
		pr := dto.PostulantResp{RefereeID: p.RefereeID}
		if p.Referee != nil {
			pr.Username = p.Referee.Username
		}
		resp.Postulants = append(resp.Postulants, pr)
	}
	return resp
}

func MapMatchListToResp(list []models.Match) []dto.MatchResp {
	out := make([]dto.MatchResp, 0, len(list))
	for _, m := range list {
		out = append(out, MapMatchToResp(m))
	}
	return out
}
