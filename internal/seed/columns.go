package seed

import "github.com/psds-microservice/employee-seed/pkg/constants"

type valueKind int

const (
	kindText valueKind = iota
	kindDate
)

// column связывает заголовок CSV с колонкой таблицы employees
type column struct {
	header string
	name   string
	kind   valueKind
}

// columns — порядок колонок в INSERT
var columns = []column{
	{header: constants.HeaderEmployeeName, name: "name", kind: kindText},
	{header: constants.HeaderEmail, name: "email", kind: kindText},
	{header: constants.HeaderAlphanumeric, name: "alphanumeric", kind: kindText},
	{header: constants.HeaderStartDate, name: "start_date", kind: kindDate},
	{header: constants.HeaderLineManager, name: "line_manager", kind: kindText},
	{header: constants.HeaderLineManagerDepartment, name: "line_manager_department", kind: kindText},
	{header: constants.HeaderDepartment, name: "department", kind: kindText},
	{header: constants.HeaderDepartmentEmail, name: "department_email", kind: kindText},
}

// Headers возвращает ожидаемые заголовки CSV в порядке колонок таблицы
func Headers() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.header
	}
	return out
}
