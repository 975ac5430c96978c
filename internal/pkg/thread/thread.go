// Package thread shapes raw folder rows into the views the list and
// conversation screens render.
package thread

import (
	"sort"

	"github.com/jobdesk/messaging-service/internal/model"
)

// CollapseLatest reduces a raw folder listing to one row per conversation.
// The representative of a thread is its highest-id message among the rows
// that passed the folder filter, so the collapsed view never leaks a message
// the subscriber's own flags would hide. Output keeps most-recent-first
// order.
func CollapseLatest(messages model.MessageList) model.MessageList {
	if len(messages) == 0 {
		return messages
	}

	latest := make(map[int64]model.Message, len(messages))
	for _, message := range messages {
		key := message.ThreadKey()
		if current, ok := latest[key]; !ok || message.ID > current.ID {
			latest[key] = message
		}
	}

	collapsed := make(model.MessageList, 0, len(latest))
	for _, message := range latest {
		collapsed = append(collapsed, message)
	}

	sort.Slice(collapsed, func(i, j int) bool {
		if collapsed[i].SentAt.Equal(collapsed[j].SentAt) {
			return collapsed[i].ID > collapsed[j].ID
		}
		return collapsed[i].SentAt.After(collapsed[j].SentAt)
	})

	return collapsed
}
