// Package timeband нормализует время суток к словарю, на котором обучается
// ценовая модель, и размечает пиковые окна.
package timeband

import (
	"strconv"
	"strings"

	"moveservice/internal/entities"
)

type Bucket string

const (
	Morning   Bucket = "morning"
	Afternoon Bucket = "afternoon"
	Evening   Bucket = "evening"
	Night     Bucket = "night"
)

// DefaultBucket используется для нераспознанного ввода: оценка должна
// оставаться доступной, а не падать с ошибкой.
const DefaultBucket = Afternoon

func (b Bucket) String() string {
	return string(b)
}

// Buckets возвращает полный словарь в порядке кодирования.
func Buckets() []Bucket {
	return []Bucket{Morning, Afternoon, Evening, Night}
}

// Пиковые окна: 06:00–09:00 и 17:00–20:00 включительно.
const (
	morningPeakStart = 6 * 60
	morningPeakEnd   = 9 * 60
	eveningPeakStart = 17 * 60
	eveningPeakEnd   = 20 * 60
)

// Normalize принимает либо "HH:MM", либо имя бакета и сводит к Bucket.
// Нераспознанный ввод дает DefaultBucket, никогда не ошибку.
func Normalize(timeOfDay string) Bucket {
	switch Bucket(strings.ToLower(strings.TrimSpace(timeOfDay))) {
	case Morning:
		return Morning
	case Afternoon:
		return Afternoon
	case Evening:
		return Evening
	case Night:
		return Night
	}

	minutes, ok := parseClock(timeOfDay)
	if !ok {
		return DefaultBucket
	}

	switch hour := minutes / 60; {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 21:
		return Evening
	default:
		return Night
	}
}

// IsPeak сообщает, попадает ли "HH:MM" в пиковое окно.
// Нечитаемое время пиком не считается.
func IsPeak(timeOfDay string) bool {
	minutes, ok := parseClock(timeOfDay)
	if !ok {
		return false
	}
	return (minutes >= morningPeakStart && minutes <= morningPeakEnd) ||
		(minutes >= eveningPeakStart && minutes <= eveningPeakEnd)
}

// SuggestTraffic оценивает уровень трафика по времени суток: пиковые окна
// дают high, дневные часы — medium, ночь — low.
func SuggestTraffic(timeOfDay string) entities.TrafficLevel {
	minutes, ok := parseClock(timeOfDay)
	if !ok {
		return entities.DefaultTrafficLevel
	}

	if IsPeak(timeOfDay) {
		return entities.TrafficHigh
	}
	if minutes >= 11*60 && minutes <= 16*60 {
		return entities.TrafficMedium
	}
	return entities.TrafficLow
}

func parseClock(raw string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(raw), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil || mins < 0 || mins > 59 {
		return 0, false
	}

	return hours*60 + mins, true
}
