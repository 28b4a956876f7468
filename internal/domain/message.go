package domain

// Message is one line of the storefront chat transcript.
type Message struct {
	ID        int32  `json:"id"`
	UserID    string `json:"user_id"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}
