// ABOUTME: Form types with validator rules and the messages shown for each failure
// ABOUTME: Validate maps validator errors to form-field messages

package resources

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SignInForm is the sign-in page form.
type SignInForm struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required,min=8"`
}

func (SignInForm) messages() map[string]string {
	return map[string]string{
		"email.required":    "Email is required",
		"email.email":       "Invalid email format",
		"password.required": "Password is required",
		"password.min":      "Password must be at least 8 characters",
	}
}

// RoleForm creates or edits a role.
type RoleForm struct {
	Title       string   `form:"title" json:"title" validate:"required"`
	Description string   `form:"description" json:"description" validate:"required"`
	Permissions []string `form:"userPermissions" json:"userPermissions" validate:"min=1,dive,oneof=create read update delete block unblock"`
}

func (RoleForm) messages() map[string]string {
	return map[string]string{
		"title.required":        "Role name is required",
		"description.required":  "Description is required",
		"userPermissions.min":   "At least one permission is required",
		"userPermissions.oneof": "Unknown permission",
	}
}

// TeamForm creates or edits a team member.
type TeamForm struct {
	FullName string `form:"fullName" json:"fullName" validate:"required"`
	Email    string `form:"email" json:"email" validate:"required,email"`
	Phone    string `form:"phone" json:"phone" validate:"required"`
	Role     string `form:"role" json:"role" validate:"required"`
}

func (TeamForm) messages() map[string]string {
	return map[string]string{
		"fullName.required": "Name is required",
		"email.required":    "Email is required",
		"email.email":       "Invalid email",
		"phone.required":    "Phone number is required",
		"role.required":     "User type is required",
	}
}

// CategoryForm creates or edits a category.
type CategoryForm struct {
	Name   string `form:"name" json:"name" validate:"required"`
	Status string `form:"status" json:"status" validate:"required,oneof=Active Inactive"`
}

func (CategoryForm) messages() map[string]string {
	return map[string]string{
		"name.required":   "Name is required",
		"status.required": "Status is required",
		"status.oneof":    "Status must be Active or Inactive",
	}
}

// ProfileForm edits the signed-in user's general information.
type ProfileForm struct {
	FullName     string `form:"fullName" json:"fullName" validate:"required"`
	Phone        string `form:"phone" json:"phone"`
	Organization string `form:"organization" json:"organization"`
	Location     string `form:"location" json:"location"`
}

func (ProfileForm) messages() map[string]string {
	return map[string]string{
		"fullName.required": "Name is required",
	}
}

// FieldErrors maps form field names to messages. Empty means valid.
type FieldErrors map[string]string

// Error joins the messages so FieldErrors can be returned as an error.
func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, m := range fe {
		msgs = append(msgs, m)
	}
	return strings.Join(msgs, "; ")
}

// First returns one message, preferring the order of fields.
func (fe FieldErrors) First(fields ...string) string {
	for _, f := range fields {
		if m, ok := fe[f]; ok {
			return m
		}
	}
	for _, m := range fe {
		return m
	}
	return ""
}

type messager interface {
	messages() map[string]string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks form and returns nil or the failing fields' messages.
func Validate(form messager) FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"_": err.Error()}
	}

	msgs := form.messages()
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		field := fieldName(fe)
		if _, seen := out[field]; seen {
			continue
		}
		if m, ok := msgs[field+"."+fe.Tag()]; ok {
			out[field] = m
		} else {
			out[field] = field + " is invalid"
		}
	}
	return out
}

// fieldName strips the index from dive errors ("userPermissions[0]").
func fieldName(fe validator.FieldError) string {
	name, _, _ := strings.Cut(fe.Field(), "[")
	return name
}
