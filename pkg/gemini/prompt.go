package gemini

import (
	"encoding/json"
	"strings"
)

// PTOSuggestionPrompt is the instruction sent ahead of the mailbox excerpts.
const PTOSuggestionPrompt = `You are an assistant that scans email content and finds potential requests or signals that would justify suggesting PTO windows for the user. For each message, look for travel plans, event dates, interviews, or explicit time-off requests. Return a JSON array of suggestions. Each suggestion should include keys: "window_start" (ISO date), "window_end" (ISO date), "reason" (short text), "source_message_id", and "confidence" (0.0-1.0). If no suggestion for a message, do not include it. Be conservative; only propose windows that are clearly implied.

Messages:
`

// WindowPickPrompt asks the model to choose one of the candidate windows.
const WindowPickPrompt = `Select the best PTO window from the candidates. Prefer lower coverage_ratio and earlier dates. Return STRICT JSON with keys: window_start, window_end, reason.
Respond ONLY with JSON.
`

// BuildPTOSuggestionPrompt renders the mailbox excerpts after the instruction.
// Bodies are expected to be truncated by the caller.
func BuildPTOSuggestionPrompt(messages []PromptMessage) string {
	var sb strings.Builder
	sb.WriteString(PTOSuggestionPrompt)
	for _, m := range messages {
		sb.WriteString("---\n")
		sb.WriteString("id: " + m.ID + "\n")
		sb.WriteString("from: " + m.From + "\n")
		sb.WriteString("subject: " + m.Subject + "\n")
		sb.WriteString("body: " + m.Body + "\n\n")
	}
	return sb.String()
}

// BuildWindowPickPrompt renders the employee, constraints and candidates as JSON.
func BuildWindowPickPrompt(employee PromptEmployee, desiredLenDays, horizonDays int, candidates []PromptWindow) (string, error) {
	payload := map[string]any{
		"employee": employee,
		"constraints": map[string]int{
			"desired_len_days": desiredLenDays,
			"horizon_days":     horizonDays,
		},
		"candidates": candidates,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return WindowPickPrompt + string(b), nil
}
