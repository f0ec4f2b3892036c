package entity

// NotificationPayload is the wire payload pushed to subscribers. Built per
// broadcast, never persisted.
type NotificationPayload struct {
	Title string                 `json:"title"`
	Body  string                 `json:"body"`
	Icon  string                 `json:"icon"`
	Badge string                 `json:"badge"`
	Data  map[string]interface{} `json:"data"`
}

// BroadcastFilter narrows the subscription set for one broadcast. Zero value
// matches everything.
type BroadcastFilter struct {
	Device string `json:"device"`
}

// BroadcastResult aggregates per-subscription outcomes of one fan-out.
type BroadcastResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

type BroadcastRequest struct {
	Title  string                 `json:"title" binding:"required"`
	Body   string                 `json:"body" binding:"required"`
	Icon   string                 `json:"icon"`
	Badge  string                 `json:"badge"`
	Data   map[string]interface{} `json:"data"`
	Device string                 `json:"device"`
}

// Content lifecycle actions that trigger notifications.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// ContentChangeEvent is published on the event bus when an admin mutates a
// content entry.
type ContentChangeEvent struct {
	ContentType string `json:"content_type"`
	Action      string `json:"action"`
	EntryID     int64  `json:"entry_id"`
	Title       string `json:"title"`
}
