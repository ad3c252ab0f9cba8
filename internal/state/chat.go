package state

import (
	"sort"
	"sync"
	"time"

	"github.com/Limpiar-Hub/portal-core/internal/models"
	"github.com/google/uuid"
)

// ChatStore owns every chat thread the portal has seen this session.
// Server fetches are merged through ApplyServer rather than replacing the
// message array, so an optimistic local entry is reconciled with its
// server echo instead of showing up twice.
type ChatStore struct {
	mu    sync.Mutex
	chats map[string]*models.Chat
	order []string
}

func NewChatStore() *ChatStore {
	return &ChatStore{chats: make(map[string]*models.Chat)}
}

// UpsertThread inserts or refreshes thread metadata. Messages already
// held locally are kept; the server thread listing does not carry them.
func (s *ChatStore) UpsertThread(thread models.Chat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.chats[thread.ChatID]
	if !ok {
		c := thread
		c.Messages = append([]models.Message(nil), thread.Messages...)
		s.chats[thread.ChatID] = &c
		s.order = append(s.order, thread.ChatID)
		return
	}
	existing.Participants = thread.Participants
	existing.LastMessage = thread.LastMessage
	existing.UnreadCount = thread.UnreadCount
	existing.UpdatedAt = thread.UpdatedAt
}

// AppendLocal adds an optimistic message with a client-generated id and
// returns that id so the send path can reconcile the server echo later.
func (s *ChatStore) AppendLocal(chatID, senderID, text string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	chat := s.chat(chatID)
	localID := uuid.NewString()
	chat.Messages = append(chat.Messages, models.Message{
		LocalID:  localID,
		ChatID:   chatID,
		SenderID: senderID,
		Text:     text,
		Pending:  true,
		SentAt:   time.Now().UTC(),
	})
	chat.LastMessage = text
	chat.UpdatedAt = time.Now().UTC()
	return localID
}

// ConfirmLocal swaps an optimistic entry for its server-issued message.
func (s *ChatStore) ConfirmLocal(chatID, localID string, confirmed models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	chat := s.chat(chatID)
	for i := range chat.Messages {
		if chat.Messages[i].LocalID == localID {
			confirmed.LocalID = localID
			confirmed.Pending = false
			chat.Messages[i] = confirmed
			return
		}
	}
	chat.Messages = append(chat.Messages, confirmed)
}

// FailLocal marks an optimistic entry failed instead of dropping it, so
// the user can see the send did not go through.
func (s *ChatStore) FailLocal(chatID, localID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	chat := s.chat(chatID)
	for i := range chat.Messages {
		if chat.Messages[i].LocalID == localID {
			chat.Messages[i].Pending = false
			chat.Messages[i].Failed = true
			return
		}
	}
}

// ApplyServer merges a server message fetch into a chat. Server messages
// are keyed by id; an optimistic pending entry is matched against a
// server message with the same sender and text and absorbed by it.
// Unmatched pending entries survive the merge; everything else follows
// the server. Messages come out in sent-time order. viewerID controls
// unread accounting: messages from other participants that are not read
// count toward UnreadCount.
func (s *ChatStore) ApplyServer(chatID, viewerID string, serverMsgs []models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	chat := s.chat(chatID)

	byID := make(map[string]int, len(serverMsgs))
	for i, m := range serverMsgs {
		if m.MessageID != "" {
			byID[m.MessageID] = i
		}
	}

	merged := make([]models.Message, 0, len(serverMsgs)+4)
	claimed := make([]bool, len(serverMsgs))

	// carry over local-only state: pending/failed entries and local ids
	// already confirmed against a server id
	for _, local := range chat.Messages {
		if local.MessageID != "" {
			if idx, ok := byID[local.MessageID]; ok {
				m := serverMsgs[idx]
				m.LocalID = local.LocalID
				merged = append(merged, m)
				claimed[idx] = true
			}
			continue
		}
		if idx, matched := matchPending(local, serverMsgs, claimed); matched {
			m := serverMsgs[idx]
			m.LocalID = local.LocalID
			merged = append(merged, m)
			claimed[idx] = true
			continue
		}
		merged = append(merged, local)
	}

	for i, m := range serverMsgs {
		if !claimed[i] {
			merged = append(merged, m)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].SentAt.Before(merged[j].SentAt)
	})
	chat.Messages = merged

	unread := 0
	for _, m := range chat.Messages {
		if m.SenderID != viewerID && !m.IsRead {
			unread++
		}
	}
	chat.UnreadCount = unread
	if len(chat.Messages) > 0 {
		last := chat.Messages[len(chat.Messages)-1]
		chat.LastMessage = last.Text
		chat.UpdatedAt = last.SentAt
	}
}

func matchPending(local models.Message, serverMsgs []models.Message, claimed []bool) (int, bool) {
	if !local.Pending && !local.Failed {
		return 0, false
	}
	for i, m := range serverMsgs {
		if claimed[i] {
			continue
		}
		if m.SenderID == local.SenderID && m.Text == local.Text {
			return i, true
		}
	}
	return 0, false
}

// MarkRead zeroes the unread count and flags every message read,
// whatever the prior contents.
func (s *ChatStore) MarkRead(chatID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	chat, ok := s.chats[chatID]
	if !ok {
		return
	}
	chat.UnreadCount = 0
	for i := range chat.Messages {
		chat.Messages[i].IsRead = true
	}
}

func (s *ChatStore) Chat(chatID string) (models.Chat, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	chat, ok := s.chats[chatID]
	if !ok {
		return models.Chat{}, false
	}
	return copyChat(chat), true
}

// Threads returns every chat ordered by most recent activity.
func (s *ChatStore) Threads() []models.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Chat, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, copyChat(s.chats[id]))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

func (s *ChatStore) chat(chatID string) *models.Chat {
	chat, ok := s.chats[chatID]
	if !ok {
		chat = &models.Chat{ChatID: chatID}
		s.chats[chatID] = chat
		s.order = append(s.order, chatID)
	}
	return chat
}

func copyChat(c *models.Chat) models.Chat {
	out := *c
	out.Messages = append([]models.Message(nil), c.Messages...)
	out.Participants = append([]models.Participant(nil), c.Participants...)
	return out
}
