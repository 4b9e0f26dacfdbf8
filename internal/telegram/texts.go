package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yuldashevrozali/Ramazon-taqvimi/internal/domain"
)

// Button labels. Matching is exact-string, emoji included.
const (
	btnToday       = "Bugun🗓️"
	btnTomorrow    = "Ertaga🗓️"
	btnTarovehTime = "Taroveh vaqti⌛️"
	btnTarovehDuo  = "Taroveh duosi🤲🏻"
	btnIftorDuo    = "Iftorlik duosi🍽️"
	btnSaharDuo    = "Saharlik duosi🌅"
	btnSource      = "Manba📚"
	btnSupport     = "Admin"
)

// UI texts (Uzbek, Markdown).
const (
	askContactText = "✅ Botdan foydalanish uchun *kontaktingizni ulashing* 👇"
	ownContactText = "❗️Iltimos, o‘zingizning kontaktingizni yuboring."
	registeredText = "✅ Rahmat! Ro‘yxatdan o‘tdingiz."
	welcomeText    = "Assalomu alaykum 😊\nXush kelibsiz!\nPastdagi tugmalardan foydalaning:"
	fallbackText   = "Pastdagi tugmalardan birini bosing 👇"
	supportText    = "📩 Taklif va murojaat uchun: @yuldashev_frontend"
	notAdminText   = "❌ Siz admin emassiz."
	canceledText   = "✅ Bekor qilindi. Pastdagi tugmalardan foydalaning 👇"

	saharDuoText = "🌙 *Saharlik duosi (niyat)*\n" +
		"Allohumma inniy nawaitu sovma g‘odin min shahri ramazona minal-fajri ilal-mag‘ribi, xolisan lillahi ta’ala.\n" +
		"_(Mazmuni: Ramazon oyida ertangi ro‘zani Alloh rizoligi uchun tutishga niyat qildim.)_"

	iftorDuoText = "🌇 *Iftorlik duosi🍽️*\n" +
		"Allohumma laka sumtu wa bika amantu wa ‘alayka tavakkaltu wa ‘ala rizqika aftartu.\n" +
		"_(Mazmuni: Allohim, Sen uchun ro‘za tutdim, Senga iymon keltirdim, Senga tavakkal qildim va bergan rizqing bilan iftor qildim.)_"

	tarovehDuoText = "🕌 *Taroveh (Taravih) namozi duosi*\n" +
		"Niyat: Alloh rizoligi uchun Ramazon oyining taroveh namozini o‘qishga niyat qildim.\n\n" +
		"_Eslatma: Taroveh namozida odatda Qur’on tilovati va tasbehlar bo‘ladi. Duoni o‘zingiz bilgan zikr va salovatlar bilan ham to‘ldirishingiz mumkin._"

	sourceText = "📌 *Manba*\n" +
		"Ramazon taqvimi va vaqtlar viloyatlar kesimida mahalliy taqvim asosida kiritiladi.\n" +
		"Fatvo uz\n\n" +
		"⚠️ Eslatma: Vaqtlar joylashuvga qarab farq qiladi."
)

// mainMenuKeyboard is the persistent reply keyboard shown to registered users.
func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnToday),
			tgbotapi.NewKeyboardButton(btnTomorrow),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnTarovehTime),
			tgbotapi.NewKeyboardButton(btnTarovehDuo),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnIftorDuo),
			tgbotapi.NewKeyboardButton(btnSaharDuo),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnSource),
			tgbotapi.NewKeyboardButton(btnSupport),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

// contactKeyboard holds the single contact-request button.
func contactKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonContact("📞 Kontaktni ulashish (Contact)"),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

// regionKeyboard builds the inline region picker for the given action
// ("today" or "tomorrow"): regions two per row plus a cancel button.
func regionKeyboard(action string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(domain.Regions); i += 2 {
		chunk := domain.Regions[i:min(i+2, len(domain.Regions))]
		var row []tgbotapi.InlineKeyboardButton
		for _, r := range chunk {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(r, callbackPrefix+action+":"+r))
		}
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("❌ Bekor qilish", callbackPrefix+"cancel:"+action),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
