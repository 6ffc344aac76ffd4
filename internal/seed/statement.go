package seed

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/psds-microservice/employee-seed/pkg/constants"
)

// Statement — один INSERT в таблицу employees, построенный из Record.
// Значения хранятся отдельно от шаблона: String() даёт SQL с экранированными литералами,
// Query()/Args() — параметризованный вариант для выполнения на живой БД.
type Statement struct {
	line    int
	values  []string
	missing []string
}

var columnList = func() string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.name
	}
	return strings.Join(names, ", ")
}()

// Format строит Statement из Record. Отсутствующие поля подставляются пустой строкой
// и перечисляются в Missing().
func Format(r Record) Statement {
	st := Statement{line: r.Line, values: make([]string, len(columns))}
	for i, c := range columns {
		v, ok := r.Get(c.header)
		if !ok {
			st.missing = append(st.missing, c.header)
		}
		st.values[i] = v
	}
	return st
}

// Line возвращает номер исходной строки CSV
func (s Statement) Line() int { return s.line }

// Missing возвращает заголовки, которых не было в исходной строке
func (s Statement) Missing() []string { return s.missing }

// String возвращает SQL-текст с литералами для записи в .sql файл
func (s Statement) String() string {
	vals := make([]string, len(columns))
	for i, c := range columns {
		vals[i] = render(c.kind, quoteLiteral(s.values[i]))
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		constants.TableEmployees, columnList, strings.Join(vals, ", "))
}

// Query возвращает параметризованный INSERT ($1..$N) для pgx
func (s Statement) Query() string {
	vals := make([]string, len(columns))
	for i, c := range columns {
		vals[i] = render(c.kind, fmt.Sprintf("$%d", i+1))
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		constants.TableEmployees, columnList, strings.Join(vals, ", "))
}

// Args возвращает значения для Query в порядке плейсхолдеров
func (s Statement) Args() []any {
	args := make([]any, len(s.values))
	for i, v := range s.values {
		args[i] = v
	}
	return args
}

func render(kind valueKind, expr string) string {
	if kind == kindDate {
		return fmt.Sprintf("TO_DATE(%s, '%s')", expr, constants.StartDateFormat)
	}
	return expr
}

// quoteLiteral экранирует строку как SQL-литерал. pq.QuoteLiteral ставит ведущий пробел
// перед E'...' для строк с обратным слэшем.
func quoteLiteral(v string) string {
	return strings.TrimLeft(pq.QuoteLiteral(v), " ")
}
