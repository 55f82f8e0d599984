package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/edgard/airbot/internal/airquality"
)

func TestSeverity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		aqi  int
		want Level
	}{
		{0, LevelGood},
		{42, LevelGood},
		{50, LevelGood},
		{51, LevelModerate},
		{100, LevelModerate},
		{101, LevelUnhealthySensitive},
		{150, LevelUnhealthySensitive},
		{151, LevelUnhealthy},
		{200, LevelUnhealthy},
		{201, LevelHazardous},
		{500, LevelHazardous},
		{-1, LevelHazardous},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Severity(tt.aqi).Level, "aqi=%d", tt.aqi)
	}
}

func TestSeverityIsTotalAndOrdered(t *testing.T) {
	t.Parallel()

	prev := Severity(0).Level
	for aqi := 0; aqi <= 1000; aqi++ {
		b := Severity(aqi)
		require.GreaterOrEqual(t, b.Level, prev, "bands never go down as AQI rises (aqi=%d)", aqi)
		require.NotEmpty(t, b.Label)
		require.NotEmpty(t, b.Marker)
		prev = b.Level
	}
}

func TestBandString(t *testing.T) {
	t.Parallel()

	want := map[Level]string{
		LevelGood:               "🟢 Отлично",
		LevelModerate:           "🟡 Нормально",
		LevelUnhealthySensitive: "🟠 Вредно для чувствительных",
		LevelUnhealthy:          "🔴 Вредно",
		LevelHazardous:          "☠️ Очень вредно",
	}
	for level, s := range want {
		require.Equal(t, s, bands[level].String())
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 7, 1, 9, 5, 0, 0, time.UTC)
	got := Format(airquality.Reading{City: "Moscow", AQI: 42}, now)

	want := strings.Join([]string{
		"*Качество воздуха*",
		"🏙 Город: *Moscow*",
		"🕒 09:05",
		"🌫 AQI: *42*",
		"📊 🟢 Отлично",
	}, "\n")
	require.Equal(t, want, got)
}

func TestFormatEscapesProviderText(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 7, 1, 18, 45, 0, 0, time.UTC)
	got := Format(airquality.Reading{City: "St. Petersburg (Center)_1", AQI: -3}, now)

	require.Contains(t, got, `*St\. Petersburg \(Center\)\_1*`)
	require.Contains(t, got, `AQI: *\-3*`)
	require.Contains(t, got, "🕒 18:45")
}

func TestFormatterUsesClock(t *testing.T) {
	t.Parallel()

	f := &Formatter{now: func() time.Time { return time.Date(2024, 1, 2, 23, 59, 0, 0, time.Local) }}
	got := f.Format(airquality.Reading{City: "Oslo", AQI: 175})

	require.Contains(t, got, "🕒 23:59")
	require.Contains(t, got, "🔴 Вредно")
}
