package telegram

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/yuldashevrozali/Ramazon-taqvimi/internal/domain"
)

const errorText = "❗️Xatolik yuz berdi. Qaytadan urinib ko‘ring."

// --- Generic send helpers ---

func (r *Router) send(c tgbotapi.Chattable) {
	if _, err := r.bot.Send(c); err != nil {
		r.log.Warn("send failed", zap.Error(err))
	}
}

func (r *Router) reply(chatID int64, text string, kb interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	r.send(msg)
}

func (r *Router) replyMarkdown(chatID int64, text string, kb interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = kb
	r.send(msg)
}

func (r *Router) answerCallback(id, text string) {
	if _, err := r.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		r.log.Warn("answer callback failed", zap.Error(err))
	}
}

// editOrSend edits an existing message; when Telegram rejects the edit
// (stale or already-edited message) it degrades to sending a fresh message.
func (r *Router) editOrSend(chatID int64, messageID int, text string) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeMarkdown
	if _, err := r.bot.Send(edit); err != nil {
		r.log.Debug("edit failed, sending new message", zap.Error(err))
		r.replyMarkdown(chatID, text, mainMenuKeyboard())
	}
}

func (r *Router) askContact(chatID int64) {
	r.replyMarkdown(chatID, askContactText, contactKeyboard())
}

func (r *Router) showWelcome(chatID int64) {
	r.reply(chatID, welcomeText, mainMenuKeyboard())
}

func (r *Router) sendFallback(chatID int64) {
	r.reply(chatID, fallbackText, mainMenuKeyboard())
}

// --- Registration ---

func (r *Router) handleStart(msg *tgbotapi.Message) {
	registered, err := r.repo.IsRegistered(chatKey(msg.Chat.ID))
	if err != nil {
		r.log.Error("registration check failed", zap.Error(err))
	}
	if !registered {
		r.askContact(msg.Chat.ID)
		return
	}
	r.showWelcome(msg.Chat.ID)
}

func (r *Router) handleContact(msg *tgbotapi.Message) {
	c := msg.Contact

	// Only the sender's own contact registers the chat.
	if c.UserID != msg.From.ID {
		r.reply(msg.Chat.ID, ownContactText, contactKeyboard())
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	err := r.repo.Upsert(domain.Patch{
		ChatID:       chatKey(msg.Chat.ID),
		UserID:       domain.Str(strconv.FormatInt(msg.From.ID, 10)),
		FirstName:    domain.Str(msg.From.FirstName),
		LastName:     domain.Str(msg.From.LastName),
		Username:     domain.Str(msg.From.UserName),
		Phone:        domain.Str(c.PhoneNumber),
		RegisteredAt: domain.Str(now),
	})
	if err != nil {
		r.log.Error("register contact failed", zap.Error(err))
		r.reply(msg.Chat.ID, errorText, contactKeyboard())
		return
	}

	r.reply(msg.Chat.ID, registeredText, nil)
	r.showWelcome(msg.Chat.ID)
}

// --- Today / tomorrow lookup ---

func (r *Router) handleLookup(msg *tgbotapi.Message, action string) {
	u, err := r.repo.GetUser(chatKey(msg.Chat.ID))
	if err != nil {
		r.log.Error("get user failed", zap.Error(err))
	}

	if u == nil || u.Region == "" {
		label := btnToday
		if action == actionTomorrow {
			label = btnTomorrow
		}
		msgOut := tgbotapi.NewMessage(msg.Chat.ID, fmt.Sprintf("📍 Viloyatni tanlang (%s):", label))
		msgOut.ReplyMarkup = regionKeyboard(action)
		r.send(msgOut)
		return
	}

	target := targetDate(action)
	entry, found := r.cal.FindByDate(u.Region, target)
	if !found {
		r.replyMarkdown(msg.Chat.ID, notFoundMessage(u.Region, target), mainMenuKeyboard())
		return
	}

	title := "Bugun"
	if action == actionTomorrow {
		title = "Ertaga"
	}
	r.replyMarkdown(msg.Chat.ID, timesMessage(title, u.Region, target, entry.Saharlik, entry.Iftorlik), mainMenuKeyboard())
}

// --- Region picker callbacks ---

func (r *Router) handleCancel(cb *tgbotapi.CallbackQuery) {
	r.answerCallback(cb.ID, "Bekor qilindi")
	edit := tgbotapi.NewEditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, canceledText)
	if _, err := r.bot.Send(edit); err != nil {
		// Stale or already-edited message; nothing to clean up.
		r.log.Debug("cancel edit failed", zap.Error(err))
	}
}

func (r *Router) handleRegionPick(cb *tgbotapi.CallbackQuery, pc callback) {
	r.answerCallback(cb.ID, pc.Region+" tanlandi")

	// The selection is stored regardless of whether the lookup succeeds.
	now := time.Now().UTC().Format(time.RFC3339)
	err := r.repo.Upsert(domain.Patch{
		ChatID:               chatKey(cb.Message.Chat.ID),
		Region:               domain.Str(pc.Region),
		LastRegionSelectedAt: domain.Str(now),
	})
	if err != nil {
		r.log.Error("save region failed", zap.Error(err))
	}

	target := targetDate(pc.Action)
	entry, found := r.cal.FindByDate(pc.Region, target)
	if !found {
		r.editOrSend(cb.Message.Chat.ID, cb.Message.MessageID, notFoundMessage(pc.Region, target))
		return
	}

	title := btnToday
	if pc.Action != actionToday {
		title = btnTomorrow
	}
	r.editOrSend(cb.Message.Chat.ID, cb.Message.MessageID, timesMessage(title, pc.Region, target, entry.Saharlik, entry.Iftorlik))
}

// targetDate resolves an action to its Tashkent calendar key.
func targetDate(action string) string {
	if action == actionToday {
		return domain.Today()
	}
	return domain.AddDays(domain.Today(), 1)
}

// --- Message rendering ---

func notFoundMessage(region, date string) string {
	return fmt.Sprintf("❗️Taqvim topilmadi\n📍 Viloyat: *%s*\n📅 Sana: *%s*\n\ncalendar.json ga shu sanani qo‘shing.",
		region, domain.PrettyDate(date))
}

func timesMessage(title, region, date, saharlik, iftorlik string) string {
	return fmt.Sprintf("📍 *%s*\n📅 *%s: %s*\n🍽 *Saharlik:* %s\n🌇 *Iftorlik:* %s",
		region, title, domain.PrettyDate(date), saharlik, iftorlik)
}

// --- Admin panel ---

func (r *Router) handleAdmin(msg *tgbotapi.Message) {
	if !r.isAdmin(msg.From) {
		r.reply(msg.Chat.ID, notAdminText, nil)
		return
	}

	users, err := r.repo.Load()
	if err != nil {
		r.log.Error("load users failed", zap.Error(err))
		r.reply(msg.Chat.ID, errorText, mainMenuKeyboard())
		return
	}

	r.replyMarkdown(msg.Chat.ID, adminReport(users), mainMenuKeyboard())
}

// adminReport renders the per-region registration tally.
func adminReport(users []domain.User) string {
	counts := domain.CountByRegion(users)
	lines := make([]string, 0, len(counts))
	for _, c := range counts {
		lines = append(lines, fmt.Sprintf("• %s: %d", c.Region, c.Count))
	}
	body := strings.Join(lines, "\n")
	if body == "" {
		body = "—"
	}
	return fmt.Sprintf("🔐 *Admin panel*\n\n👥 *Jami userlar:* %d\n\n📍 *Viloyatlar bo‘yicha:*\n%s",
		len(users), body)
}
