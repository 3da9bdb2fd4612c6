package bot

// User-facing texts, carried over from the original bot. Uzbek (Latin),
// Telegram Markdown.

const (
	msgWelcome = "🎄 *Yangi yil bayramiga ro‘yxatdan o‘tish*\n\n" +
		"Boshlash: /register\n" +
		"Admin ID olish: /whoami"

	msgClosed = "⛔️ *Ro‘yxatdan o‘tish yopilgan.*\n\n" +
		"Agar siz ro‘yxatdan o‘tgan bo‘lsangiz, kelish sanangiz bo‘yicha xabarnoma yuboriladi."

	msgAskChild  = "1) Farzandning *ism va familiyasi*ni yuboring (to‘liq)."
	msgAskParent = "2) Kuzatuvchi ota-onaning *ism va familiyasi*ni yuboring."
	msgAskPhoto  = "3) Farzandning *fotosurati*ni yuboring (foto/selfi)."
	msgAskPhone  = "4) Telefon raqamingizni yuboring. Masalan: +99890xxxxxxx"

	msgNameInvalid  = "Iltimos, *to‘liq F.I.Sh* yuboring (kamida 2 ta so‘z)."
	msgPhotoInvalid = "Iltimos, rasmni *foto* ko‘rinishida yuboring."
	msgPhoneInvalid = "Telefon raqam noto‘g‘ri. Masalan: +99890xxxxxxx"

	msgConfirmFmt = "✅ *Tekshiring:*\n\n" +
		"👧🧒 Farzand: *%s*\n" +
		"👤 Ota-ona: *%s*\n" +
		"📞 Telefon: *%s*\n\n" +
		"Tasdiqlash uchun: *Ha* (yozing)\nBekor qilish: *Yo‘q*"

	msgConfirmRetry = "Iltimos, *Ha* yoki *Yo‘q* deb javob bering."

	msgCanceled = "Bekor qilindi. /register orqali qayta boshlashingiz mumkin."

	msgSuccess = "✨ *Ro‘yxatdan o‘tganingiz uchun rahmat!*\n\n" +
		"🧸 *Guruhlar bo‘yicha tashrif tartibi:*\n" +
		"- A dan O gacha bo‘lgan familiyalar — 27-dekabr\n" +
		"- P dan CH gacha bo‘lgan familiyalar — 28-dekabr\n\n" +
		"📩 Ro‘yxat yopilgach, kelish sanangiz bo‘yicha xabarnoma yuboriladi."

	msgHint = "Ro‘yxatdan o‘tish uchun /register yuboring."

	msgAdminOnly = "Bu buyruq faqat admin uchun."

	msgAdminCaptionFmt = "🆕 *Yangi ro‘yxatdan o‘tish*\n\n" +
		"👧🧒 Farzand: *%s*\n" +
		"👤 Ota-ona: *%s*\n" +
		"📞 Telefon: *%s*\n\n" +
		"👤 Username: @%s\n" +
		"🆔 user_id: `%d`\n" +
		"💬 chat_id: `%d`\n" +
		"🕒 Vaqt: %s"

	msgWhoamiFmt = "👤 username: @%s\n🆔 user_id: %d\n💬 chat_id: %d"

	msgNotif27 = "🔔 *27-dekabr kuni keladigan mehmonlar uchun bildirishnoma*\n\n" +
		"Hurmatli ota-onalar!\n\n" +
		"Siz va farzandingiz Yangi yil bayramiga *27-dekabr* kuni taklif etilgansiz.\n" +
		"Bayram Markaziy bankning *B-binosida* bo‘lib o‘tadi.\n\n" +
		"🕘 Yig‘ilish vaqti: *soat 9:30 dan*\n" +
		"(shu vaqtda ro‘yxatdan o‘tish ishlari amalga oshiriladi)\n\n" +
		"Iltimos, belgilangan vaqtda yetib kelishingizni so‘raymiz.\n" +
		"Sizni bayramona muhit va quvonchli lahzalar kutmoqda! 🎄✨"

	msgNotif28 = "🔔 *28-dekabr kuni keladigan mehmonlar uchun bildirishnoma*\n\n" +
		"Hurmatli ota-onalar!\n\n" +
		"Siz va farzandingiz Yangi yil bayramiga *28-dekabr* kuni taklif etilgansiz.\n" +
		"Bayram Markaziy bankning *B-binosida* bo‘lib o‘tadi.\n\n" +
		"🕘 Yig‘ilish vaqti: *soat 9:30 dan*\n" +
		"(shu vaqtda ro‘yxatdan o‘tish ishlari amalga oshiriladi)\n\n" +
		"Iltimos, belgilangan vaqtda yetib kelishingizni so‘raymiz.\n" +
		"Farzandlaringiz uchun unutilmas Yangi yil bayrami tayyorlab qo‘yilgan! 🎅🎁"

	msgNothingToSendFmt = "%d-dekabr uchun yuboriladigan (yangi) ro‘yxat yo‘q."
	msgBroadcastSumFmt  = "✅ Yuborildi: %d\n⚠️ Xatolik: %d"
	msgSheetsErrFmt     = "Sheets xatolik: %v"
	msgExportFmt        = "📊 Assigned:\n27-dekabr: %d\n28-dekabr: %d"
)
