package validation

import (
	"fmt"
	"html"
	"reflect"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// GeneralKey collects errors that concern the whole object rather than one field
const GeneralKey = "__general__"

// Common messages
const (
	MsgRequired       = "This field is required."
	MsgNull           = "This field may not be null."
	MsgBlank          = "This field may not be blank."
	MsgInvalidEmail   = "Enter a valid email address."
	MsgInvalidDate    = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	MsgExpectedList   = "Expected a list of items."
	MsgExpectedObject = "Expected an object."
	MsgInvalidValue   = "Invalid value."
)

// Errors maps a field path to its messages. It implements error.
type Errors map[string][]string

// Add appends a message for field
func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Merge copies every message of other into e, prefixing field paths with prefix
func (e Errors) Merge(prefix string, other Errors) {
	for field, msgs := range other {
		key := field
		if prefix != "" {
			key = prefix + "." + field
		}
		e[key] = append(e[key], msgs...)
	}
}

// HasErrors reports whether any message was recorded
func (e Errors) HasErrors() bool {
	return len(e) > 0
}

// Err returns e as an error, or nil when empty
func (e Errors) Err() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e[field], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// General builds an Errors holding a single whole-object message
func General(msg string) Errors {
	return Errors{GeneralKey: {msg}}
}

// InvalidChoiceMessage is the message for a value outside its closed set
func InvalidChoiceMessage(value string, choices []string) string {
	return fmt.Sprintf("%q is not a valid choice. Valid choices: %s", value, strings.Join(choices, ", "))
}

// InvalidPKMessage is the message for a reference to a missing row
func InvalidPKMessage(id uint) string {
	return fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id)
}

// RangeMessage is the message for an integer outside [min, max]
func RangeMessage(min, max int) string {
	return fmt.Sprintf("Ensure this value is between %d and %d.", min, max)
}

// MaxLengthMessage is the message for a string longer than max characters
func MaxLengthMessage(max int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", max)
}

// MinValueMessage is the message for an integer below min
func MinValueMessage(min int) string {
	return fmt.Sprintf("Ensure this value is greater than or equal to %d.", min)
}

// MaxValueMessage is the message for an integer above max
func MaxValueMessage(max int) string {
	return fmt.Sprintf("Ensure this value is less than or equal to %d.", max)
}

var strictPolicy = bluemonday.StrictPolicy()

// Sanitize strips all markup from free text and trims surrounding space
func Sanitize(value string) string {
	// StrictPolicy escapes entities; keep plain characters such as & as typed
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(value)))
}

// SanitizeText runs Sanitize in place over every string field tagged notblank,
// including the fields of list items.
func SanitizeText(s interface{}) {
	sanitizeStruct(reflect.Indirect(reflect.ValueOf(s)))
}

func sanitizeStruct(v reflect.Value) {
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		fv := v.Field(i)
		for fv.Kind() == reflect.Ptr && !fv.IsNil() {
			fv = fv.Elem()
		}
		switch fv.Kind() {
		case reflect.String:
			if hasRule(f.Tag.Get("validate"), "notblank") && fv.CanSet() {
				fv.SetString(Sanitize(fv.String()))
			}
		case reflect.Slice:
			for j := 0; j < fv.Len(); j++ {
				sanitizeStruct(reflect.Indirect(fv.Index(j)))
			}
		}
	}
}

func hasRule(tag, rule string) bool {
	for _, r := range strings.Split(tag, ",") {
		if r == rule || strings.HasPrefix(r, rule+"=") {
			return true
		}
	}
	return false
}
