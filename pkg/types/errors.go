package types

import "errors"

var (
	// ErrInvalidTimeFormat возвращается при строке времени, не соответствующей "HH:MM"
	ErrInvalidTimeFormat = errors.New("types: invalid time string format, expected HH:MM")

	// ErrNegativeTime возвращается, когда арифметика времени дает отрицательный результат
	ErrNegativeTime = errors.New("types: negative time")
)
