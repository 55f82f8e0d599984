// Package report renders air quality readings as Telegram MarkdownV2 messages.
package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-telegram/bot"

	"github.com/edgard/airbot/internal/airquality"
)

// Level orders the severity bands from cleanest to most polluted.
type Level int

const (
	LevelGood Level = iota
	LevelModerate
	LevelUnhealthySensitive
	LevelUnhealthy
	LevelHazardous
)

// Band is a severity category derived from an AQI value.
type Band struct {
	Level  Level
	Marker string
	Label  string
}

// String returns the marker and label as shown to users, e.g. "🟢 Отлично".
func (b Band) String() string {
	return b.Marker + " " + b.Label
}

var bands = [...]Band{
	LevelGood:               {Level: LevelGood, Marker: "🟢", Label: "Отлично"},
	LevelModerate:           {Level: LevelModerate, Marker: "🟡", Label: "Нормально"},
	LevelUnhealthySensitive: {Level: LevelUnhealthySensitive, Marker: "🟠", Label: "Вредно для чувствительных"},
	LevelUnhealthy:          {Level: LevelUnhealthy, Marker: "🔴", Label: "Вредно"},
	LevelHazardous:          {Level: LevelHazardous, Marker: "☠️", Label: "Очень вредно"},
}

// Severity maps a US AQI value to its band. Ranges are closed and
// non-overlapping: 0-50, 51-100, 101-150, 151-200, 201+. Values below zero
// are outside the provider's scale and fall through to Hazardous.
func Severity(aqi int) Band {
	switch {
	case aqi >= 0 && aqi <= 50:
		return bands[LevelGood]
	case aqi >= 51 && aqi <= 100:
		return bands[LevelModerate]
	case aqi >= 101 && aqi <= 150:
		return bands[LevelUnhealthySensitive]
	case aqi >= 151 && aqi <= 200:
		return bands[LevelUnhealthy]
	default:
		return bands[LevelHazardous]
	}
}

// Format renders the report for reading, stamped with now's wall-clock time
// in now's location. Provider-supplied text is escaped for MarkdownV2.
func Format(reading airquality.Reading, now time.Time) string {
	aqi := bot.EscapeMarkdown(strconv.Itoa(reading.AQI))

	var sb strings.Builder
	sb.WriteString("*Качество воздуха*\n")
	sb.WriteString("🏙 Город: *" + bot.EscapeMarkdown(reading.City) + "*\n")
	sb.WriteString("🕒 " + now.Format("15:04") + "\n")
	sb.WriteString("🌫 AQI: *" + aqi + "*\n")
	sb.WriteString("📊 " + Severity(reading.AQI).String())
	return sb.String()
}

// Formatter renders reports using the process-local clock.
type Formatter struct {
	now func() time.Time
}

// NewFormatter returns a Formatter using time.Now in the local timezone.
func NewFormatter() *Formatter {
	return &Formatter{now: time.Now}
}

// Format renders reading with the current local time.
func (f *Formatter) Format(reading airquality.Reading) string {
	return Format(reading, f.now().Local())
}
