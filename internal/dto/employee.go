package dto

// EmployeeListQuery mirrors supported directory listing filters.
type EmployeeListQuery struct {
	Unit   string
	Search string
	Page   int
}
