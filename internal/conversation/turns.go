package conversation

// Turn roles. Function turns carry the action name alongside its result.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleFunction  = "function"
)

// Turn is one entry in the dialogue record.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`
}

// Conversation is the ordered, append-only turn sequence for one session.
// It is a value owned by the caller; the engine returns updated copies and
// never holds on to one.
type Conversation []Turn

// Append returns the conversation extended with the given turns.
func (c Conversation) Append(turns ...Turn) Conversation {
	return append(c, turns...)
}

// Last returns the most recent turn, or a zero Turn when empty.
func (c Conversation) Last() Turn {
	if len(c) == 0 {
		return Turn{}
	}
	return c[len(c)-1]
}
