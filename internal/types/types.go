package types

import "encoding/json"

// ClientMessage is the inbound wire envelope, one JSON event per frame.
// Position/Rotation/Color are relayed opaquely, so they stay raw bytes.
type ClientMessage struct {
	Type     string          `json:"type"`
	Mode     string          `json:"mode,omitempty"`
	Code     string          `json:"code,omitempty"`
	Room     string          `json:"room,omitempty"`
	Position json.RawMessage `json:"position,omitempty"`
	Rotation json.RawMessage `json:"rotation,omitempty"`
	Color    json.RawMessage `json:"color,omitempty"`
	Guess    string          `json:"guess,omitempty"`
	Correct  bool            `json:"correct,omitempty"`
}

// ServerMessage is the outbound envelope. Pointer fields distinguish
// "absent" from zero values that are meaningful on the wire (a score of 0,
// drawerIsHost=false). Word is omitted entirely for the non-drawer: its
// absence is the confidentiality contract, not a rendering hint.
type ServerMessage struct {
	Type         string          `json:"type"`
	Code         string          `json:"code,omitempty"`
	Mode         string          `json:"mode,omitempty"`
	Round        int             `json:"round,omitempty"`
	DrawerIsHost *bool           `json:"drawerIsHost,omitempty"`
	Word         string          `json:"word,omitempty"`
	Position     json.RawMessage `json:"position,omitempty"`
	Rotation     json.RawMessage `json:"rotation,omitempty"`
	Color        json.RawMessage `json:"color,omitempty"`
	GuesserWon   *bool           `json:"guesserWon,omitempty"`
	HostScore    *int            `json:"hostScore,omitempty"`
	JoinScore    *int            `json:"joinScore,omitempty"`
	Msg          string          `json:"msg,omitempty"`
}
