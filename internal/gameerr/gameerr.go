package gameerr

import (
	"errors"
	"fmt"
)

// Таксономия ошибок ядра ставок.
// Сервисы оборачивают эти ошибки через fmt.Errorf("%w: ..."),
// хэндлеры разбирают их через errors.Is и отдают нужный HTTP статус
var (
	// ErrValidation - некорректный запрос. Ставка не сыграна, леджер не тронут
	ErrValidation = errors.New("validation error")
	// ErrInsufficientFunds - не хватает средств (проверка до розыгрыша или отказ при списании)
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrNotFound - неизвестный кейс, предмет, актив или кошелек
	ErrNotFound = errors.New("not found")
	// ErrInternal - генератор не смог выдать результат (например, нулевая сумма весов)
	ErrInternal = errors.New("internal error")
)

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Internalf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInternal, fmt.Sprintf(format, args...))
}
