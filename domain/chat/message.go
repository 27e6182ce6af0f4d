package chat

import "time"

// Role identifies who authored a message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the product research conversation
type Message struct {
	Role Role      `json:"role"`
	Text string    `json:"text"`
	HTML string    `json:"html,omitempty"`
	At   time.Time `json:"at"`
}

// Greeting opens every new conversation
const Greeting = "Halo! Saya asisten riset produk TokPee. Ada yang bisa saya bantu hari ini?"
