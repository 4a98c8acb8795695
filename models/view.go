package models

type InputState struct {
	Value          string
	Focused        bool
	CursorPosition int
}

func (c *InputState) Reset() {
	c.Value = ""
	c.CursorPosition = 0
}

// MatchText is a segment of a rendered text, Match marks the part
// that matched the search query
type MatchText struct {
	Text  string `json:"text"`
	Match bool   `json:"match"`
}
