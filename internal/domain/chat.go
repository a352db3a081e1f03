package domain

// Роли участников диалога
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage - одна реплика диалога с ассистентом.
// Транскрипт - append-only последовательность таких реплик,
// хранится на стороне клиента и передаётся с каждым запросом.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
