package telegram

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/yuldashevrozali/Ramazon-taqvimi/internal/calendar"
	"github.com/yuldashevrozali/Ramazon-taqvimi/internal/store"
)

// api is the slice of the bot client the router needs. *tgbotapi.BotAPI
// satisfies it; tests substitute a recording fake.
type api interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Router wires Telegram updates to handlers. It keeps no per-conversation
// state: registration and region selection live in the user registry and are
// re-read on every update that needs them.
type Router struct {
	bot     api
	log     *zap.Logger
	repo    store.Repo
	cal     *calendar.Calendar
	adminID string
}

// NewRouter creates a new Telegram router.
func NewRouter(bot api, log *zap.Logger, repo store.Repo, cal *calendar.Calendar, adminID string) *Router {
	return &Router{
		bot:     bot,
		log:     log,
		repo:    repo,
		cal:     cal,
		adminID: adminID,
	}
}

// HandleUpdate routes a single update to the appropriate handler.
func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	switch {
	case upd.Message != nil:
		r.handleMessage(upd.Message)
	case upd.CallbackQuery != nil:
		r.handleCallbackQuery(upd.CallbackQuery)
	}
}

func (r *Router) handleMessage(msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	// Contact shares pass the registration gate: they ARE the registration.
	if msg.Contact != nil {
		r.handleContact(msg)
		return
	}

	if !r.isAdmin(msg.From) {
		registered, err := r.repo.IsRegistered(chatKey(msg.Chat.ID))
		if err != nil {
			r.log.Error("registration check failed", zap.Error(err))
		}
		if !registered {
			r.askContact(msg.Chat.ID)
			return
		}
	}

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			r.handleStart(msg)
		case "adminman":
			r.handleAdmin(msg)
		default:
			r.sendFallback(msg.Chat.ID)
		}
		return
	}

	switch msg.Text {
	case btnSource:
		r.replyMarkdown(msg.Chat.ID, sourceText, mainMenuKeyboard())
	case btnSupport:
		r.reply(msg.Chat.ID, supportText, mainMenuKeyboard())
	case btnSaharDuo:
		r.replyMarkdown(msg.Chat.ID, saharDuoText, mainMenuKeyboard())
	case btnIftorDuo:
		r.replyMarkdown(msg.Chat.ID, iftorDuoText, mainMenuKeyboard())
	case btnTarovehDuo:
		r.replyMarkdown(msg.Chat.ID, tarovehDuoText, mainMenuKeyboard())
	case btnToday:
		r.handleLookup(msg, actionToday)
	case btnTomorrow:
		r.handleLookup(msg, actionTomorrow)
	default:
		r.sendFallback(msg.Chat.ID)
	}
}

func (r *Router) handleCallbackQuery(cb *tgbotapi.CallbackQuery) {
	if cb.From == nil || cb.Message == nil {
		return
	}
	pc, ok := parseCallback(cb.Data)
	if !ok {
		// Foreign payload, ignore silently.
		return
	}

	if !r.isAdmin(cb.From) {
		registered, err := r.repo.IsRegistered(chatKey(cb.Message.Chat.ID))
		if err != nil {
			r.log.Error("registration check failed", zap.Error(err))
		}
		if !registered {
			r.askContact(cb.Message.Chat.ID)
			return
		}
	}

	switch pc.Kind {
	case cbCancel:
		r.handleCancel(cb)
	case cbPick:
		r.handleRegionPick(cb, pc)
	}
}

// isAdmin reports whether the sender is the fixed administrator identity.
func (r *Router) isAdmin(from *tgbotapi.User) bool {
	return from != nil && strconv.FormatInt(from.ID, 10) == r.adminID
}

// chatKey renders a chat ID in the registry's string key format.
func chatKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
