package pricing

import "errors"

var (
	ErrInvalidDistance = errors.New("invalid distance")
	ErrUnknownCategory = errors.New("unknown vehicle category")
	ErrEmptySeries     = errors.New("empty distance series")

	// ErrModelUnavailable — обучение модели не удалось. Фатально только для
	// текущего запроса: следующий запрос запустит обучение заново.
	ErrModelUnavailable = errors.New("pricing model unavailable")
)
