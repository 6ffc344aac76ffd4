package errors

import (
	"errors"
	"fmt"
)

// Классы ошибок. Команды проверяют их через errors.Is.
var (
	ErrRead         = errors.New("read error")
	ErrWrite        = errors.New("write error")
	ErrConnection   = errors.New("connection error")
	ErrMissingField = errors.New("missing field")
)

// ReadError — источник отсутствует, не читается или поток CSV повреждён
type ReadError struct {
	Path string
	Line int
	Err  error
}

func (e *ReadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("read %s (line %d): %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

func (e *ReadError) Is(target error) bool { return target == ErrRead }

// WriteError — файл назначения недоступен для записи
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func (e *WriteError) Is(target error) bool { return target == ErrWrite }

// ConnectionError — не удалось установить соединение с БД
type ConnectionError struct {
	Target string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect %s: %v", e.Target, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

func (e *ConnectionError) Is(target error) bool { return target == ErrConnection }
