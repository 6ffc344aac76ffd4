package seed

// Record — одна строка CSV: имя колонки из заголовка → значение
type Record struct {
	// Line — номер строки в исходном файле (с 1, заголовок — строка 1)
	Line   int
	Fields map[string]string
}

// Get возвращает значение колонки и признак её наличия в строке
func (r Record) Get(column string) (string, bool) {
	v, ok := r.Fields[column]
	return v, ok
}
