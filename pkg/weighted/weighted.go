package weighted

import "errors"

// Source - источник равномерной случайности в [0, 1).
// Внедряется снаружи, чтобы в тестах подставлять детерминированные значения
type Source func() float64

var ErrEmptyTable = errors.New("weighted: total weight must be positive")

type entry[T any] struct {
	value  T
	weight float64
}

// Table - таблица взвешенного выбора.
// Веса не обязаны суммироваться в 1 - выбор нормируется по фактической сумме
type Table[T any] struct {
	entries []entry[T]
	total   float64
}

func NewTable[T any]() *Table[T] {
	return &Table[T]{}
}

// Add добавляет значение с весом. Записи с неположительным весом игнорируются
func (t *Table[T]) Add(value T, weight float64) *Table[T] {
	if weight <= 0 {
		return t
	}
	t.entries = append(t.entries, entry[T]{value: value, weight: weight})
	t.total += weight
	return t
}

// Sample выбирает значение: равномерный бросок масштабируется суммой весов,
// затем линейный проход с накоплением - побеждает первая запись,
// чья накопленная граница покрывает бросок
func (t *Table[T]) Sample(src Source) (T, error) {
	var zero T
	if t.total <= 0 || len(t.entries) == 0 {
		return zero, ErrEmptyTable
	}

	draw := src() * t.total

	cumulative := 0.0
	for _, e := range t.entries {
		cumulative += e.weight
		if draw <= cumulative {
			return e.value, nil
		}
	}

	// Возможно только из-за погрешности float на границе 1.0 - отдаем последнюю запись
	return t.entries[len(t.entries)-1].value, nil
}

// Total возвращает фактическую сумму весов таблицы
func (t *Table[T]) Total() float64 {
	return t.total
}

// Len возвращает количество записей
func (t *Table[T]) Len() int {
	return len(t.entries)
}
