package grading

import (
	"encoding/json"
	"strings"

	"github.com/SAP-F-2025/quiz-service/internal/models"
)

// ResponseBool reads a true-false response: a JSON boolean as is, otherwise
// the text "true", "t" or "1" (any case) is true and everything else false.
func ResponseBool(raw json.RawMessage) bool {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	switch strings.ToLower(strings.TrimSpace(ResponseText(raw))) {
	case "true", "t", "1":
		return true
	}
	return false
}

// ResponseText renders any response as text. Strings are unquoted, other
// scalars keep their literal JSON form, a missing response is empty.
func ResponseText(raw json.RawMessage) string {
	return models.ScalarString(raw)
}
