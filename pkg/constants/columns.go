package constants

// Заголовки CSV с данными сотрудников
const (
	HeaderEmployeeName          = "Employee Name"
	HeaderEmail                 = "email"
	HeaderAlphanumeric          = "alphanumeric"
	HeaderStartDate             = "Employee Start Date"
	HeaderLineManager           = "Current Line Manager"
	HeaderLineManagerDepartment = "Line Manager Department"
	HeaderDepartment            = "Department"
	HeaderDepartmentEmail       = "Department email"
)

// Целевая таблица
const (
	TableEmployees = "employees"

	// StartDateFormat — формат даты в CSV (день.месяц.год из двух цифр) для TO_DATE
	StartDateFormat = "DD.MM.YY"
)
