package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/theoremus-urban-solutions/eta-digest/catalog"
	"github.com/theoremus-urban-solutions/eta-digest/digest"
)

// conversation tracks what the next plain-text message from a chat
// means.
type conversation int

const (
	convNone conversation = iota
	convFeedback
	convReply
)

// Bot drives the Telegram command loop.
type Bot struct {
	api            *tgbotapi.BotAPI
	catalog        *catalog.Catalog
	renderer       *digest.Renderer
	feedbackChatID int64

	mu      sync.Mutex
	pending map[int64]conversation // chat id -> awaited conversation input
}

// New authenticates against the Telegram API.
func New(token string, feedbackChatID int64, c *catalog.Catalog, r *digest.Renderer) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	log.Printf("bot authorized as @%s", api.Self.UserName)
	return &Bot{
		api:            api,
		catalog:        c,
		renderer:       r,
		feedbackChatID: feedbackChatID,
		pending:        map[int64]conversation{},
	}, nil
}

// Run consumes updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(update)
		}
	}
}

// SendMessage relays an operator message to a chat. It backs the HTTP
// /message hook.
func (b *Bot) SendMessage(chatID int64, text string) error {
	_, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.onRouteButton(update.CallbackQuery)
		return
	}
	msg := update.Message
	if msg == nil {
		return
	}
	if msg.IsCommand() {
		b.onCommand(msg)
		return
	}
	b.onText(msg)
}

func (b *Bot) onCommand(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "start":
		log.Printf("ADD %s @%d", userLabel(msg.From), chatID)
		greeting := fmt.Sprintf("Welcome, %s. %s", userLabel(msg.From), msgHelp)
		reply := tgbotapi.NewMessage(chatID, greeting)
		reply.ReplyMarkup = defaultKeyboard()
		b.send(reply)
	case "help":
		b.send(tgbotapi.NewMessage(chatID, msgHelp))
	case "about":
		b.send(tgbotapi.NewMessage(chatID, msgAbout))
	case "prognosis":
		b.onPrognosis(msg)
	case "feedback":
		b.setPending(chatID, convFeedback)
		b.send(tgbotapi.NewMessage(chatID, msgFeedback))
	case "reply":
		b.setPending(chatID, convReply)
		b.send(tgbotapi.NewMessage(chatID, msgReplyHint))
	case "cancel":
		if b.takePending(chatID) != convNone {
			b.send(tgbotapi.NewMessage(chatID, msgFeedbackCancelled))
		}
	}
}

func (b *Bot) onPrognosis(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	route := strings.TrimSpace(msg.CommandArguments())
	log.Printf("REQ from [%s @%d]: %s", userLabel(msg.From), chatID, msg.Text)

	if route == "" {
		reply := tgbotapi.NewMessage(chatID, msgChooseRoute)
		reply.ReplyMarkup = routeMenu(b.catalog.RouteNames())
		b.send(reply)
		return
	}
	b.sendDigest(chatID, route)
}

// onRouteButton handles a press on the inline route keyboard.
func (b *Bot) onRouteButton(query *tgbotapi.CallbackQuery) {
	route := query.Data
	chatID := query.Message.Chat.ID
	log.Printf("REQ from [%s @%d]: /prognosis %s via keyboard", userLabel(query.From), chatID, route)
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		log.Printf("callback ack failed: %v", err)
	}
	b.sendDigest(chatID, route)
}

func (b *Bot) sendDigest(chatID int64, route string) {
	text, err := b.renderer.Render(route)
	if err != nil {
		if errors.Is(err, digest.ErrRouteNotFound) {
			b.send(tgbotapi.NewMessage(chatID, msgUnsupportedRoute))
			return
		}
		log.Printf("render %s failed: %v", route, err)
		return
	}
	reply := tgbotapi.NewMessage(chatID, text)
	reply.ParseMode = tgbotapi.ModeMarkdown
	b.send(reply)
}

// onText consumes the message that a /feedback or /reply conversation
// is waiting for.
func (b *Bot) onText(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch b.takePending(chatID) {
	case convFeedback:
		log.Printf("FEED from [%s @%d]: %s", userLabel(msg.From), chatID, msg.Text)
		b.send(tgbotapi.NewMessage(chatID, msgFeedbackThanks))
		report := fmt.Sprintf("FEED from [%s @%d]: %s", userLabel(msg.From), chatID, msg.Text)
		b.send(tgbotapi.NewMessage(b.feedbackChatID, report))
	case convReply:
		log.Printf("REPLY from [%s @%d]: %s", userLabel(msg.From), chatID, msg.Text)
		report := fmt.Sprintf("REPLY from [%s]: %s", userLabel(msg.From), msg.Text)
		b.send(tgbotapi.NewMessage(b.feedbackChatID, report))
	}
}

func (b *Bot) setPending(chatID int64, c conversation) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending[chatID] = c
}

func (b *Bot) takePending(chatID int64) conversation {
	b.mu.Lock()
	defer b.mu.Unlock()
	c := b.pending[chatID]
	delete(b.pending, chatID)
	return c
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		log.Printf("telegram send failed: %v", err)
	}
}

func userLabel(u *tgbotapi.User) string {
	if u == nil {
		return "unknown"
	}
	if u.UserName != "" {
		return u.UserName
	}
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
