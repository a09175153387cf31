package qrsession

type SessionResponse struct {
	SessionID string   `json:"session_id"`
	GigID     string   `json:"gig_id"`
	Token     string   `json:"token"`
	CreatedAt string   `json:"created_at"`
	ExpiresAt string   `json:"expires_at"`
	IsActive  bool     `json:"is_active"`
	ScannedBy []string `json:"scanned_by,omitempty"`
}

// SessionRef identifies a validated session to the attendance tracker.
type SessionRef struct {
	SessionID string
	GigID     string
}

// WindowDetails is echoed back on OUT_OF_WINDOW so the brand UI can show
// when generation opens and closes.
type WindowDetails struct {
	WindowStart string `json:"window_start"`
	WindowEnd   string `json:"window_end"`
}
