package chat

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"gorm.io/datatypes"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one role-tagged message in a conversation.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

func UserTurn(content string) Turn {
	return Turn{Role: RoleUser, Content: content}
}

func AssistantTurn(content string) Turn {
	return Turn{Role: RoleAssistant, Content: content}
}

func EncodeTurns(turns []Turn) (datatypes.JSON, error) {
	if turns == nil {
		turns = []Turn{}
	}
	b, err := json.Marshal(turns)
	if err != nil {
		return nil, fmt.Errorf("could not marshal turns: %w", err)
	}
	return datatypes.JSON(b), nil
}

// DecodeTurns is fail-open: a corrupt blob is logged and treated as an
// empty conversation. Chat continuity is a convenience, losing it must
// not break generation.
func DecodeTurns(blob datatypes.JSON) []Turn {
	if len(blob) == 0 {
		return nil
	}
	var turns []Turn
	if err := json.Unmarshal(blob, &turns); err != nil {
		slog.Warn("discarding corrupt chat history blob", "error", err)
		return nil
	}
	return turns
}
