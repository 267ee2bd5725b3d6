package site

import (
	"strings"

	"github.com/fastygo/petbuddy/domain"
)

// FilterEmployees returns, in original order, the employees whose name or role
// contains term case-insensitively. An empty term keeps every employee.
// The result never aliases all.
func FilterEmployees(all []domain.Employee, term string) []domain.Employee {
	needle := strings.ToLower(term)
	out := make([]domain.Employee, 0, len(all))
	for _, emp := range all {
		if strings.Contains(strings.ToLower(emp.Name), needle) ||
			strings.Contains(strings.ToLower(emp.Role), needle) {
			out = append(out, emp)
		}
	}
	return out
}
