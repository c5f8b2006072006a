package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"sgac_app_go/models"
	"sgac_app_go/validation"
)

func init() {
	validation.RegisterChoices("careerModality", models.CareerModalities)
	validation.RegisterChoices("subjectModality", models.SubjectModalities)
	validation.RegisterChoices("curriculum", models.CurriculumTypes)
	validation.RegisterChoices("teachingCategory", models.TeachingCategories)
	validation.RegisterChoices("scientificDegree", models.ScientificDegrees)
	validation.RegisterChoices("publicationType", models.PublicationTypes)
	validation.RegisterChoices("authorRole", models.AuthorRoles)
	validation.RegisterChoices("eventClassification", models.EventClassifications)
	validation.RegisterChoices("awardClassification", models.AwardClassifications)
	validation.RegisterChoices("indicator", models.IndicatorNames)
	validation.RegisterChoices("grade", models.Grades)

	validation.RegisterRange("academicYear", models.MinAcademicYear, models.MaxAcademicYear)
	validation.RegisterRange("term", models.MinTerm, models.MaxTerm)
	validation.RegisterRange("publicationLevel", models.MinPublicationLevel, models.MaxPublicationLevel)

	validation.RegisterCustomType(func(v reflect.Value) interface{} {
		return v.Interface().(NullableInt).Value
	}, NullableInt{})
}

// NullableInt distinguishes an absent key from an explicit null
type NullableInt struct {
	Set   bool
	Value *int
}

// UnmarshalJSON is only called when the key is present
func (n *NullableInt) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(b, []byte("null")) {
		n.Value = nil
		return nil
	}
	var v int
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

var nullableIntType = reflect.TypeOf(NullableInt{})

// requestKeys remembers what the body carried beyond the decoded values:
// the raw top-level keys and the first type mismatch.
type requestKeys struct {
	sent    map[string]json.RawMessage
	typeErr *json.UnmarshalTypeError
}

func (k *requestKeys) track(sent map[string]json.RawMessage, typeErr *json.UnmarshalTypeError) {
	k.sent = sent
	k.typeErr = typeErr
}

// sentNull reports whether the body carried key with an explicit null
func (k *requestKeys) sentNull(key string) bool {
	raw, ok := k.sent[key]
	return ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

type tracker interface {
	track(map[string]json.RawMessage, *json.UnmarshalTypeError)
}

// Decode unmarshals a JSON object into req.
// For request types a field-level type mismatch is kept and reported by Validate
// together with the other field errors; anything else is returned.
func Decode(data []byte, req interface{}) error {
	var sent map[string]json.RawMessage
	if err := json.Unmarshal(data, &sent); err != nil {
		return err
	}

	err := json.Unmarshal(data, req)
	t, ok := req.(tracker)
	if !ok {
		return err
	}

	var typeErr *json.UnmarshalTypeError
	if err != nil && !(errors.As(err, &typeErr) && typeErr.Field != "") {
		return err
	}
	t.track(sent, typeErr)
	return nil
}

// check sanitizes text fields, then validates req.
// Type mismatches and explicit nulls win over tag errors on the same field.
func check(req interface{}, keys *requestKeys, partial bool) validation.Errors {
	validation.SanitizeText(req)

	errs := validation.Errors{}
	if keys.typeErr != nil {
		errs.Add(keys.typeErr.Field, validation.TypeMessage(keys.typeErr.Type))
	}
	for name := range keys.sent {
		if keys.sentNull(name) && !nullable(req, name) {
			errs.Add(name, validation.MsgNull)
		}
	}

	reported := map[string]bool{}
	for field := range errs {
		reported[topLevel(field)] = true
	}
	for field, msgs := range validation.Check(req, partial) {
		if !reported[topLevel(field)] {
			errs[field] = append(errs[field], msgs...)
		}
	}
	return errs
}

// nullable reports whether the field with JSON name key accepts null.
// Unknown keys are ignored.
func nullable(req interface{}, key string) bool {
	t := reflect.Indirect(reflect.ValueOf(req)).Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if strings.SplitN(f.Tag.Get("json"), ",", 2)[0] != key {
			continue
		}
		return f.Type == nullableIntType || strings.Contains(f.Tag.Get("validate"), "omitnil")
	}
	return true
}

func topLevel(field string) string {
	if i := strings.IndexAny(field, ".["); i >= 0 {
		return field[:i]
	}
	return field
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
