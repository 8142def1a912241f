package dto

type CreateVenueRequest struct {
	Name     string `json:"name" binding:"required"`
	City     string `json:"city"`
	Capacity int    `json:"capacity"`
}

type CreateMusicianRequest struct {
	Name  string `json:"name" binding:"required"`
	Genre string `json:"genre"`
	City  string `json:"city"`
	Bio   string `json:"bio"`
	Rate  string `json:"rate"`
}

type CreateEventRequest struct {
	VenueID     string `json:"venue_id" binding:"required,uuid"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	City        string `json:"city"`
	Genre       string `json:"genre"`
	EventDate   string `json:"event_date" binding:"required"`
	BudgetRate  string `json:"budget_rate"`
}

type ApplyRequest struct {
	MusicianID   string `json:"musician_id" binding:"required,uuid"`
	ProposedRate string `json:"proposed_rate"`
	Pitch        string `json:"pitch"`
}

type CompleteRequest struct {
	Actor string `json:"actor" binding:"required"`
}

type CancelRequestRequest struct {
	Reason string `json:"reason" binding:"required"`
	Actor  string `json:"actor" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
	Actor  string `json:"actor" binding:"required"`
}
