// Package validation holds one hand-written validator per insertable
// entity. The rules mirror the table definitions field by field; keeping
// them explicit (rather than reflecting over the ORM schema) makes the
// write-path contract readable in one place.
package validation

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/klarsen/folio/internal/models"
)

// FieldError reports the first field that failed validation and why.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string { return e.Reason }

func required(field, value string) *FieldError {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Reason: fmt.Sprintf("%s is required", field)}
	}
	return nil
}

// Message validates a contact-form submission. This is the only validator
// exercised by the public API; the rest guard the seed path.
func Message(m *models.Message) *FieldError {
	if err := required("name", m.Name); err != nil {
		return err
	}
	if err := required("email", m.Email); err != nil {
		return err
	}
	if addr, err := mail.ParseAddress(m.Email); err != nil || addr.Address != m.Email {
		return &FieldError{Field: "email", Reason: "email must be a valid email address"}
	}
	if err := required("message", m.Message); err != nil {
		return err
	}
	return nil
}

func Profile(p *models.Profile) *FieldError {
	if err := required("name", p.Name); err != nil {
		return err
	}
	if err := required("title", p.Title); err != nil {
		return err
	}
	if err := required("bio", p.Bio); err != nil {
		return err
	}
	return required("summary", p.Summary)
}

func Skill(s *models.Skill) *FieldError {
	if err := required("name", s.Name); err != nil {
		return err
	}
	if err := required("category", s.Category); err != nil {
		return err
	}
	if s.Proficiency != nil && (*s.Proficiency < 0 || *s.Proficiency > 100) {
		return &FieldError{Field: "proficiency", Reason: "proficiency must be between 0 and 100"}
	}
	return nil
}

func Project(p *models.Project) *FieldError {
	if err := required("title", p.Title); err != nil {
		return err
	}
	if err := required("description", p.Description); err != nil {
		return err
	}
	if len(p.TechStack) == 0 {
		return &FieldError{Field: "techStack", Reason: "techStack must list at least one technology"}
	}
	return required("outcome", p.Outcome)
}

func Experience(e *models.Experience) *FieldError {
	if err := required("company", e.Company); err != nil {
		return err
	}
	if err := required("role", e.Role); err != nil {
		return err
	}
	if err := required("startDate", e.StartDate); err != nil {
		return err
	}
	if len(e.Description) == 0 {
		return &FieldError{Field: "description", Reason: "description must list at least one bullet point"}
	}
	return nil
}
