package entity

// Notice is the message delivered to one geofence owner about a new event.
type Notice struct {
	EventID      int64  `json:"event_id"`
	EventName    string `json:"event_name"`
	RecipientID  int64  `json:"recipient_id"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	GeofenceName string `json:"geofence_name"`
}

// NoticeFromMatch builds the notice addressed to the owner of m.
func NoticeFromMatch(m IntersectionMatch) Notice {
	return Notice{
		EventID:      m.EventID,
		EventName:    m.EventName,
		RecipientID:  m.OwnerID,
		Email:        m.OwnerEmail,
		FirstName:    m.OwnerFirstName,
		GeofenceName: m.GeofenceName,
	}
}
