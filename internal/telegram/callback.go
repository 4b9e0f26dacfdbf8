package telegram

import "strings"

// callbackPrefix namespaces all inline-keyboard payloads of this bot.
// Payload layout: "ramazon:<action>:<region>" for a region pick, or
// "ramazon:cancel:<action>" for the cancel button.
const callbackPrefix = "ramazon:"

const (
	actionToday    = "today"
	actionTomorrow = "tomorrow"
)

type callbackKind int

const (
	cbPick callbackKind = iota
	cbCancel
)

// callback is the decoded form of an inline-keyboard payload.
type callback struct {
	Kind   callbackKind
	Action string // actionToday or actionTomorrow
	Region string // set for cbPick
}

// parseCallback decodes payloads carrying callbackPrefix. Payloads without
// the prefix belong to someone else and report ok=false.
func parseCallback(data string) (callback, bool) {
	if !strings.HasPrefix(data, callbackPrefix) {
		return callback{}, false
	}
	parts := strings.SplitN(strings.TrimPrefix(data, callbackPrefix), ":", 2)
	if len(parts) != 2 {
		return callback{}, false
	}
	if parts[0] == "cancel" {
		return callback{Kind: cbCancel, Action: parts[1]}, true
	}
	return callback{Kind: cbPick, Action: parts[0], Region: parts[1]}, true
}
