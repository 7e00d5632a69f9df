// file: dto/rating.go
package dto

type RateRefereeReq struct {
	HistoryEntryID uint32 `json:"history_entry_id" binding:"required"`
	RefereeID      uint32 `json:"referee_id" binding:"required"`
	Stars          int    `json:"stars" binding:"required"`
	Comment        string `json:"comment"`
}
