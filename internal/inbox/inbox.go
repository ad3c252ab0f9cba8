package inbox

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Limpiar-Hub/portal-core/internal/api"
	"github.com/Limpiar-Hub/portal-core/internal/models"
	"github.com/Limpiar-Hub/portal-core/internal/poll"
	"github.com/Limpiar-Hub/portal-core/internal/state"
)

// ChatAPI is the slice of the backend client the inbox needs.
type ChatAPI interface {
	ChatThreads(ctx context.Context, userID string) ([]models.Chat, error)
	SupportMessages(ctx context.Context, chatID string) ([]models.Message, error)
	StartSupport(ctx context.Context, input api.StartSupportInput) (api.StartSupportResult, error)
	Reply(ctx context.Context, input api.ReplyInput) (models.Message, error)
	MarkChatRead(ctx context.Context, chatID string) error
}

type Options struct {
	ThreadsInterval  time.Duration
	MessagesInterval time.Duration
}

// Inbox drives the support/inbox experience: a thread-list poll, a
// message poll for the open conversation, optimistic sends reconciled
// against their server echo, and read marking. Poll results merge into
// the chat store; they never blind-replace it.
type Inbox struct {
	api     ChatAPI
	chats   *state.ChatStore
	tickets *state.TicketStore
	userID  string

	threads  *poll.Runner
	messages *poll.Runner

	mu     sync.Mutex
	active string
}

func New(chatAPI ChatAPI, chats *state.ChatStore, tickets *state.TicketStore, userID string, options Options) *Inbox {
	threadsEvery := options.ThreadsInterval
	if threadsEvery <= 0 {
		threadsEvery = 5 * time.Second
	}
	messagesEvery := options.MessagesInterval
	if messagesEvery <= 0 {
		messagesEvery = 5 * time.Second
	}

	in := &Inbox{api: chatAPI, chats: chats, tickets: tickets, userID: userID}
	in.threads = poll.NewRunner("inbox-threads", threadsEvery, in.refreshThreads, poll.Options{})
	in.messages = poll.NewRunner("inbox-messages", messagesEvery, in.refreshMessages, poll.Options{})
	return in
}

// Start runs both polls until ctx is cancelled.
func (in *Inbox) Start(ctx context.Context) error {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = in.threads.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		_ = in.messages.Run(ctx)
	}()
	wg.Wait()
	return ctx.Err()
}

// Pause parks both polls; Resume picks them back up.
func (in *Inbox) Pause() {
	in.threads.Pause()
	in.messages.Pause()
}

func (in *Inbox) Resume() {
	in.threads.Resume()
	in.messages.Resume()
}

func (in *Inbox) refreshThreads(ctx context.Context) error {
	threads, err := in.api.ChatThreads(ctx, in.userID)
	if err != nil {
		return err
	}
	for _, thread := range threads {
		in.chats.UpsertThread(thread)
	}
	return nil
}

func (in *Inbox) refreshMessages(ctx context.Context) error {
	chatID := in.Active()
	if chatID == "" {
		return nil
	}
	msgs, err := in.api.SupportMessages(ctx, chatID)
	if err != nil {
		return err
	}
	in.chats.ApplyServer(chatID, in.userID, msgs)
	return nil
}

// Open makes a conversation the active one and marks it read, locally
// first so the unread badge clears at once, then remotely. A remote
// failure keeps local state as the user saw it; the mark is retried on
// the next Open.
func (in *Inbox) Open(ctx context.Context, chatID string) error {
	in.mu.Lock()
	in.active = chatID
	in.mu.Unlock()

	in.chats.MarkRead(chatID)
	if err := in.api.MarkChatRead(ctx, chatID); err != nil {
		log.Printf("inbox mark-read chat=%s: %v", chatID, err)
		return err
	}
	return nil
}

func (in *Inbox) Active() string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.active
}

// Send appends an optimistic message, performs the reply, and swaps the
// optimistic entry for the server message. On failure the entry stays
// visible, flagged failed.
func (in *Inbox) Send(ctx context.Context, chatID, text string) error {
	localID := in.chats.AppendLocal(chatID, in.userID, text)

	confirmed, err := in.api.Reply(ctx, api.ReplyInput{ChatID: chatID, Text: text})
	if err != nil {
		in.chats.FailLocal(chatID, localID)
		return err
	}
	in.chats.ConfirmLocal(chatID, localID, confirmed)
	return nil
}

// StartTicket opens a support conversation and its ticket.
func (in *Inbox) StartTicket(ctx context.Context, title, category, text string) (models.Ticket, error) {
	result, err := in.api.StartSupport(ctx, api.StartSupportInput{
		UserID:   in.userID,
		Title:    title,
		Category: category,
		Text:     text,
	})
	if err != nil {
		return models.Ticket{}, err
	}
	in.chats.UpsertThread(result.Chat)
	in.tickets.Add(result.Ticket)
	return result.Ticket, nil
}

// ResolveTicket flips the local ticket record. Resolution is tracked on
// the ticket, not the chat; a conversation stays readable after its
// ticket closes.
func (in *Inbox) ResolveTicket(id string) {
	in.tickets.Resolve(id)
}
