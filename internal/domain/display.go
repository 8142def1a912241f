package domain

// StatusDisplay is presentation metadata for a status. The tables below are
// read-only; handlers copy entries out, nothing mutates them.
type StatusDisplay struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var eventStatusDisplay = map[EventStatus]StatusDisplay{
	EventStatusOpen:                {Label: "Open", Color: "gray", Icon: "calendar"},
	EventStatusInvited:             {Label: "Invited", Color: "purple", Icon: "mail"},
	EventStatusApplicationReceived: {Label: "Applications", Color: "blue", Icon: "inbox"},
	EventStatusSelected:            {Label: "Selected", Color: "teal", Icon: "user-check"},
	EventStatusConfirmed:           {Label: "Confirmed", Color: "green", Icon: "check-circle"},
	EventStatusCancelRequested:     {Label: "Cancel requested", Color: "orange", Icon: "alert-triangle"},
	EventStatusCancelled:           {Label: "Cancelled", Color: "red", Icon: "x-circle"},
	EventStatusCompleted:           {Label: "Completed", Color: "green", Icon: "flag"},
}

var bookingStatusDisplay = map[BookingStatus]StatusDisplay{
	BookingStatusApplied:       {Label: "Applied", Color: "blue", Icon: "inbox"},
	BookingStatusSelected:      {Label: "Selected", Color: "teal", Icon: "user-check"},
	BookingStatusConfirmed:     {Label: "Confirmed", Color: "green", Icon: "check-circle"},
	BookingStatusCompleted:     {Label: "Completed", Color: "green", Icon: "flag"},
	BookingStatusCancelled:     {Label: "Cancelled", Color: "red", Icon: "x-circle"},
	BookingStatusPendingCancel: {Label: "Cancel requested", Color: "orange", Icon: "alert-triangle"},
}

// Display returns the presentation metadata for an event status. Unknown
// statuses get a neutral entry rather than a zero value.
func (s EventStatus) Display() StatusDisplay {
	if d, ok := eventStatusDisplay[s]; ok {
		return d
	}
	return StatusDisplay{Label: string(s), Color: "gray", Icon: "help-circle"}
}

func (s BookingStatus) Display() StatusDisplay {
	if d, ok := bookingStatusDisplay[s]; ok {
		return d
	}
	return StatusDisplay{Label: string(s), Color: "gray", Icon: "help-circle"}
}
