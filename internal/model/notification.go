package model

// Notification is the inbound webhook envelope from the identity provider.
// Body carries the free-text event description with the embedded literal;
// the remaining fields are optional envelope metadata.
type Notification struct {
	Body              string `json:"body"`
	Severity          string `json:"severity,omitempty"`
	UserEmail         string `json:"user_email,omitempty"`
	UserUsername      string `json:"user_username,omitempty"`
	EventUserEmail    string `json:"event_user_email,omitempty"`
	EventUserUsername string `json:"event_user_username,omitempty"`
}

// SlackMessage is the payload accepted on the secondary channel endpoint.
type SlackMessage struct {
	Text string `json:"text,omitempty"`
}

// FormattedEvent is the rendered notification, immutable once built.
type FormattedEvent struct {
	Title   string
	Message string
}
