package models

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// ChatMessage is one bubble in the travel assistant conversation.
type ChatMessage struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
	// Images holds data URLs of the pictures attached to a user message.
	Images []string `json:"images,omitempty"`
}

const ChatGreeting = "Hello! I'm your Tamil Nadu travel assistant. Ask me anything about places to visit, local culture, food, or travel tips!"
