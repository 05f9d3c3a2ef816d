package changelist

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ActionMessage is one rendered line of a change-log entry.
type ActionMessage struct {
	Msg    string `json:"msg"`
	Icon   string `json:"icon,omitempty"`
	Colour string `json:"colour,omitempty"`
}

func added(msg string) ActionMessage   { return ActionMessage{Msg: msg, Icon: "plus-circle", Colour: "success"} }
func changed(msg string) ActionMessage { return ActionMessage{Msg: msg, Icon: "edit", Colour: "blue"} }
func deleted(msg string) ActionMessage { return ActionMessage{Msg: msg, Icon: "trash", Colour: "danger"} }

type objectRef struct {
	Name   string `json:"name"`
	Object string `json:"object"`
}

type changeRef struct {
	Name   string   `json:"name"`
	Object string   `json:"object"`
	Fields []string `json:"fields"`
}

type changeEntry struct {
	Added   *objectRef `json:"added"`
	Changed *changeRef `json:"changed"`
	Deleted *objectRef `json:"deleted"`
}

// ActionMessages renders the host's change-log message. Structured messages
// (a JSON list of added/changed/deleted entries) become one line each.
// Undecodable JSON is returned verbatim without styling; any other message
// is returned as a single "changed" line.
func ActionMessages(changeMessage string) []ActionMessage {
	var messages []ActionMessage

	if strings.HasPrefix(changeMessage, "[") {
		var entries []changeEntry
		if err := json.Unmarshal([]byte(changeMessage), &entries); err != nil {
			return []ActionMessage{{Msg: changeMessage}}
		}

		for _, e := range entries {
			switch {
			case e.Added != nil:
				if e.Added.Name == "" && e.Added.Object == "" {
					messages = append(messages, added("Added."))
				} else {
					messages = append(messages, added(fmt.Sprintf("Added %s “%s”.", e.Added.Name, e.Added.Object)))
				}
			case e.Changed != nil:
				messages = append(messages, changed(fmt.Sprintf("Changed %s.", TextList(e.Changed.Fields, "and"))))
			case e.Deleted != nil:
				messages = append(messages, deleted(fmt.Sprintf("Deleted “%s”.", e.Deleted.Object)))
			}
		}
	}

	if len(messages) == 0 {
		return []ActionMessage{changed(changeMessage)}
	}

	return messages
}

// TextList joins items as "a, b and c" using last as the final conjunction.
func TextList(items []string, last string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " " + last + " " + items[len(items)-1]
	}
}
