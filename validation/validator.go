package validation

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate = newValidate()

	registryMu sync.RWMutex
	choices    = map[string][]string{}
	ranges     = map[string][2]int{}
)

// Struct tags understood on top of the built-in ones:
//
//	notblank        string not empty after trimming; also marks the field for Sanitize
//	between=name    integer inside the range registered under name
//	choice=name     string in the closed set registered under name
func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "between", func(fl validator.FieldLevel) bool {
		r, ok := Range(fl.Param())
		if !ok {
			return false
		}
		n := fl.Field().Int()
		return n >= int64(r[0]) && n <= int64(r[1])
	})
	mustRegister(v, "choice", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, c := range Choices(fl.Param()) {
			if c == value {
				return true
			}
		}
		return false
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// RegisterChoices names a closed set for the choice tag
func RegisterChoices(name string, values []string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	choices[name] = values
}

// Choices returns the closed set registered under name
func Choices(name string) []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return choices[name]
}

// RegisterRange names an inclusive integer range for the between tag
func RegisterRange(name string, min, max int) {
	registryMu.Lock()
	defer registryMu.Unlock()
	ranges[name] = [2]int{min, max}
}

// Range returns the bounds registered under name
func Range(name string) ([2]int, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	r, ok := ranges[name]
	return r, ok
}

// RegisterCustomType lets wrapper types such as nullable numbers be validated by their inner value.
// Call it from init, before any validation runs.
func RegisterCustomType(fn validator.CustomTypeFunc, types ...interface{}) {
	validate.RegisterCustomTypeFunc(fn, types...)
}

// Check validates s against its validate tags.
// With partial set only the top-level fields that hold a value are checked, list items included.
func Check(s interface{}, partial bool) Errors {
	var err error
	if partial {
		err = validate.StructFiltered(s, skipUnset(s))
	} else {
		err = validate.Struct(s)
	}
	if err == nil {
		return Errors{}
	}
	return FromValidator(err)
}

// skipUnset returns a filter that skips every field under an unset top-level field.
// Namespaces look like "ProfessorRequest.Emails[0].Email".
func skipUnset(s interface{}) validator.FilterFunc {
	set := map[string]bool{}
	v := reflect.Indirect(reflect.ValueOf(s))
	if v.Kind() == reflect.Struct {
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).PkgPath != "" {
				continue
			}
			if hasValue(v.Field(i)) {
				set[t.Field(i).Name] = true
			}
		}
	}

	return func(ns []byte) bool {
		if i := bytes.IndexByte(ns, '.'); i >= 0 {
			ns = ns[i+1:]
		}
		if i := bytes.IndexAny(ns, ".["); i >= 0 {
			ns = ns[:i]
		}
		return !set[string(ns)]
	}
}

func hasValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return !v.IsNil()
	}
	return !v.IsZero()
}

// FromValidator converts validator errors into field errors keyed by JSON path, e.g. emails[1].email
func FromValidator(err error) Errors {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return General(err.Error())
	}

	errs := Errors{}
	for _, fe := range fieldErrs {
		errs.Add(fieldPath(fe.Namespace()), message(fe))
	}
	return errs
}

func fieldPath(namespace string) string {
	if _, path, found := strings.Cut(namespace, "."); found {
		return path
	}
	return namespace
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "notblank":
		return MsgBlank
	case "email":
		return MsgInvalidEmail
	case "datetime":
		return MsgInvalidDate
	case "choice":
		return InvalidChoiceMessage(fmt.Sprint(fe.Value()), Choices(fe.Param()))
	case "between":
		if r, ok := Range(fe.Param()); ok {
			return RangeMessage(r[0], r[1])
		}
	case "min":
		if n, err := strconv.Atoi(fe.Param()); err == nil && fe.Kind() != reflect.String {
			return MinValueMessage(n)
		}
	case "max":
		n, err := strconv.Atoi(fe.Param())
		if err != nil {
			break
		}
		if fe.Kind() == reflect.String {
			return MaxLengthMessage(n)
		}
		return MaxValueMessage(n)
	}
	return MsgInvalidValue
}

// TypeMessage is the message for a JSON value of the wrong type for t
func TypeMessage(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "A valid integer is required."
	case reflect.Bool:
		return "Must be a valid boolean."
	case reflect.Slice:
		return MsgExpectedList
	case reflect.Struct, reflect.Map:
		return MsgExpectedObject
	case reflect.String:
		return "Not a valid string."
	}
	return MsgInvalidValue
}

// Validator plugs the shared validator into echo (e.Validator)
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validate}
}

// Validate checks every tagged field of i and returns Errors on failure
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return FromValidator(err).Err()
	}
	return nil
}
