package websocket

// Message is the envelope pushed to activity-feed clients. Action is always
// "event" today; the field exists so the feed can carry other frame kinds
// without breaking consumers.
type Message struct {
	Action  string      `json:"action"`
	Payload interface{} `json:"payload"`
}
