package domain

import "fmt"

// Gender is the fixed gender category of an employee record.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// EmploymentStatus is the fixed status category shown in the directory.
type EmploymentStatus string

const (
	StatusActive  EmploymentStatus = "Active"
	StatusOnLeave EmploymentStatus = "On Leave"
	StatusIntern  EmploymentStatus = "Intern"
)

// Employee is an immutable directory record.
type Employee struct {
	ID          int              `json:"id" yaml:"id"`
	Name        string           `json:"name" yaml:"name"`
	Gender      Gender           `json:"gender" yaml:"gender"`
	Email       string           `json:"email" yaml:"email"`
	Status      EmploymentStatus `json:"status" yaml:"status"`
	Salary      int              `json:"salary" yaml:"salary"` // thousands
	Role        string           `json:"role" yaml:"role"`
	AvatarColor string           `json:"avatar_color" yaml:"avatar_color"`
}

// Initial returns the first rune of the name for avatar badges.
func (e Employee) Initial() string {
	for _, r := range e.Name {
		return string(r)
	}
	return ""
}

func (g *Gender) UnmarshalText(text []byte) error {
	switch v := Gender(text); v {
	case GenderMale, GenderFemale, GenderOther:
		*g = v
		return nil
	default:
		return fmt.Errorf("unknown gender %q", string(text))
	}
}

func (s *EmploymentStatus) UnmarshalText(text []byte) error {
	switch v := EmploymentStatus(text); v {
	case StatusActive, StatusOnLeave, StatusIntern:
		*s = v
		return nil
	default:
		return fmt.Errorf("unknown employment status %q", string(text))
	}
}
