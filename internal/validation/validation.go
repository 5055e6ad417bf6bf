package validation

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Houeta/hrms-lite/internal/lib/clock"
	"github.com/Houeta/hrms-lite/internal/models"
)

// emailShape accepts local@domain.tld with no whitespace in any segment.
var emailShape = regexp.MustCompile(`\S+@\S+\.\S+`)

// messages maps json field name and failed tag to the text shown next to the field.
var messages = map[string]map[string]string{
	"employee_id": {
		"required": "Employee ID is required",
		"min":      "Employee ID must be at least 3 characters",
	},
	"name":       {"required": "Name is required"},
	"department": {"required": "Department is required"},
	"role":       {"required": "Role is required"},
	"email": {
		"required":   "Email is required",
		"emailshape": "Invalid email format",
	},
	"salary": {
		"required": "Salary is required",
		"positive": "Salary must be greater than 0",
	},
	"date": {
		"required":     "Please select a date",
		"calendardate": "Please select a valid date",
		"notfuture":    "Date cannot be in the future",
	},
	"status": {
		"required": "Please select status",
		"oneof":    "Status must be Present or Absent",
	},
}

// Attendance forms label the employee field differently from employee forms.
var attendanceMessages = map[string]string{
	"required": "Please select an employee",
	"unknown":  "Selected employee does not exist",
}

// Validator checks drafts before any request is sent. Both checks are pure
// apart from the injected clock.
type Validator struct {
	validate *validator.Validate
	clock    clock.Clock
}

// New creates a Validator that compares attendance dates with c.Today().
func New(c clock.Clock) *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = validate.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("positive", func(fl validator.FieldLevel) bool {
		value, err := strconv.ParseFloat(fl.Field().String(), 64)
		return err == nil && value > 0 && !math.IsInf(value, 0)
	})
	_ = validate.RegisterValidation("calendardate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(models.DateLayout, fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		return fl.Field().String() <= c.Today()
	})

	return &Validator{validate: validate, clock: c}
}

// Employee validates an employee draft. An empty map means the draft is valid.
func (v *Validator) Employee(draft models.EmployeeDraft) map[string]string {
	trimmed := draft.Trimmed()
	return v.fieldErrors(v.validate.Struct(&trimmed), nil)
}

// Attendance validates an attendance draft. When selectable is not nil the
// employee must be one of its ids. An empty map means the draft is valid.
func (v *Validator) Attendance(draft models.AttendanceDraft, selectable map[string]struct{}) map[string]string {
	trimmed := draft.Trimmed()
	errs := v.fieldErrors(v.validate.Struct(&trimmed), attendanceMessages)

	if _, failed := errs["employee_id"]; !failed && selectable != nil {
		if _, ok := selectable[trimmed.EmployeeID]; !ok {
			errs["employee_id"] = attendanceMessages["unknown"]
		}
	}

	return errs
}

// Today exposes the date the validator treats as the latest allowed attendance date.
func (v *Validator) Today() string {
	return v.clock.Today()
}

func (v *Validator) fieldErrors(err error, employeeIDMessages map[string]string) map[string]string {
	errs := make(map[string]string)
	if err == nil {
		return errs
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		errs["_form"] = err.Error()
		return errs
	}

	for _, fieldErr := range vErrs {
		field := fieldErr.Field()
		if _, seen := errs[field]; seen {
			continue
		}
		errs[field] = message(field, fieldErr.Tag(), employeeIDMessages)
	}

	return errs
}

func message(field, tag string, employeeIDMessages map[string]string) string {
	if field == "employee_id" && employeeIDMessages != nil {
		if msg, ok := employeeIDMessages[tag]; ok {
			return msg
		}
	}
	if msg, ok := messages[field][tag]; ok {
		return msg
	}
	return formatFieldName(field) + " is invalid"
}

// formatFieldName turns recipient_phone into Recipient Phone.
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}
