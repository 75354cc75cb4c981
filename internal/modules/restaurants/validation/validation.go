package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/yungbote/restaurants-backend/internal/domain/aggregates"
	domain "github.com/yungbote/restaurants-backend/internal/domain/restaurants"
	"github.com/yungbote/restaurants-backend/internal/platform/pointers"
)

// At least 7 digits; "123" is not a reachable number.
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)

type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Violations []Violation

func (v Violations) Error() string {
	if len(v) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(v))
	for _, item := range v {
		msgs = append(msgs, item.Field+": "+item.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (v Violations) Code() aggregates.ErrorCode { return aggregates.CodeValidation }

// Err returns nil for an empty list so callers can use the usual err != nil check.
func (v Violations) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// ByField groups messages the way a model-state payload does.
func (v Violations) ByField() map[string][]string {
	out := make(map[string][]string, len(v))
	for _, item := range v {
		out[item.Field] = append(out[item.Field], item.Message)
	}
	return out
}

// Has reports whether field carries a violation with the given message.
func (v Violations) Has(field, message string) bool {
	for _, item := range v {
		if item.Field == field && item.Message == message {
			return true
		}
	}
	return false
}

// restaurantRules is the flattened shape that tags run against. Optional
// pointers are dereferenced so "absent" and "empty" both skip via omitempty.
type restaurantRules struct {
	Name          string `field:"name" validate:"notblank,max=100"`
	Description   string `field:"description" validate:"notblank,max=500"`
	Category      string `field:"category" validate:"notblank,max=50"`
	ContactEmail  string `field:"contactEmail" validate:"omitempty,email"`
	ContactNumber string `field:"contactNumber" validate:"omitempty,phone"`
}

var messages = map[string]map[string]string{
	"name": {
		"notblank": "Restaurant name is required",
		"max":      "Restaurant name cannot exceed 100 characters",
	},
	"description": {
		"notblank": "Description is required",
		"max":      "Description cannot exceed 500 characters",
	},
	"category": {
		"notblank": "Category is required",
		"max":      "Category cannot exceed 50 characters",
	},
	"contactEmail": {
		"email": "Please provide a valid email address",
	},
	"contactNumber": {
		"phone": "Please provide a valid phone number",
	},
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("field"); name != "" {
			return name
		}
		return f.Name
	})
	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "phone", isPhoneNumber)
	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("validation: register " + tag + ": " + err.Error())
	}
}

func isPhoneNumber(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

// ValidateRestaurantInput checks a create/update payload. The result is empty
// when the input is acceptable; otherwise it lists every violation in field order.
func (v *Validator) ValidateRestaurantInput(in domain.CreateRestaurantInput) Violations {
	rules := restaurantRules{
		Name:          in.Name,
		Description:   in.Description,
		Category:      in.Category,
		ContactEmail:  pointers.Deref(in.ContactEmail),
		ContactNumber: pointers.Deref(in.ContactNumber),
	}
	err := v.validate.Struct(rules)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Violations{{Field: "", Message: err.Error()}}
	}
	out := make(Violations, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, Violation{Field: fe.Field(), Message: messageFor(fe.Field(), fe.Tag())})
	}
	return out
}

func messageFor(field, tag string) string {
	if byTag, ok := messages[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
	}
	return field + " is invalid"
}
