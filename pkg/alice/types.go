// Package alice implements the Yandex Dialogs webhook surface of the bot:
// the request/response envelope, the conversation state machine, and the
// spoken rendering of a day's schedule.
package alice

// Request is the incoming Yandex Dialogs webhook envelope, trimmed down to
// the fields the bot actually uses.
type Request struct {
	Version string    `json:"version"`
	Session Session   `json:"session"`
	Request Utterance `json:"request"`
	State   State     `json:"state"`
}

// Session carries the dialog session bookkeeping; it is echoed back verbatim.
type Session struct {
	New       bool   `json:"new"`
	MessageID int    `json:"message_id"`
	SessionID string `json:"session_id"`
	SkillID   string `json:"skill_id"`
	UserID    string `json:"user_id"`
}

// Utterance is what the user actually said.
type Utterance struct {
	Command           string `json:"command"`
	OriginalUtterance string `json:"original_utterance"`
	Type              string `json:"type"`
}

// State holds per-user persistent state managed by the platform.
type State struct {
	User UserState `json:"user"`
}

// UserState is the bot's persisted per-user data. A zero GroupID means the
// user has not told us their group yet.
type UserState struct {
	GroupID int `json:"group_id"`
}

// Response is the outgoing webhook envelope.
type Response struct {
	Version         string         `json:"version"`
	Session         Session        `json:"session"`
	Response        Payload        `json:"response"`
	UserStateUpdate map[string]any `json:"user_state_update"`
}

// Payload is the spoken/displayed part of the response.
type Payload struct {
	Text       string `json:"text"`
	EndSession bool   `json:"end_session"`
}
