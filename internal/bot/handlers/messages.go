package handlers

// User-facing literals. These must match what the chat clients send and
// expect byte for byte.
const (
	CommandStart        = "/start"
	ButtonAirQuality    = "🌫 Качество воздуха"
	ButtonShareLocation = "📍 Отправить локацию"

	msgWelcomeNew       = "Привет! Отправь своё местоположение, чтобы узнать качество воздуха рядом с тобой."
	msgWelcomeBack      = "С возвращением! Нажми кнопку, чтобы проверить качество воздуха."
	msgLocationSavedFmt = "✅ Местоположение сохранено: %s"
	msgLocationRequired = "❗ Сначала поделись местоположением"
	msgFetchFailed      = "⚠️ Не удалось получить данные о качестве воздуха. Попробуй позже."
)

// LocationKeyboard asks the user to share their device location.
func LocationKeyboard() *Keyboard {
	return &Keyboard{
		Rows:   [][]Button{{{Text: ButtonShareLocation, RequestLocation: true}}},
		Resize: true,
	}
}

// MainKeyboard offers the air quality request.
func MainKeyboard() *Keyboard {
	return &Keyboard{
		Rows:   [][]Button{{{Text: ButtonAirQuality}}},
		Resize: true,
	}
}
