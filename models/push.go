package models

// PushPayload is an external push input used to display a notification and
// route a click on it.
type PushPayload struct {
	Title   string       `json:"title"`
	Body    string       `json:"body"`
	Data    PushData     `json:"data"`
	Actions []PushAction `json:"actions,omitempty"`
	Tag     string       `json:"tag,omitempty"`
}

// PushData carries the click target of a notification.
type PushData struct {
	URL string `json:"url,omitempty"`
}

// PushAction is a button displayed with a notification.
type PushAction struct {
	Action string `json:"action"`
	Title  string `json:"title"`
}
