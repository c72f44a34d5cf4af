// Package validate provides struct-tag validation for request input types.
//
// Rules are comma-separated in the `validate` tag:
//
//	required          field must not be zero/empty
//	nullable          if empty, skip the remaining rules for this field
//	email             valid email address
//	numeric           any number
//	integer           whole number
//	date              parseable date (common layouts tried)
//	min=N             string: min char length | number: min value
//	max=N             string: max char length | number: max value
//	gt=N gte=N        number > N / >= N
//	lt=N lte=N        number < N / <= N
//	in=a,b,c          value must be one of the listed items
//	confirmed         value must equal the sibling field <field>_confirmation
//
// Example:
//
//	type Input struct {
//	    Name   string `json:"name"   validate:"required,min=2,max=100"`
//	    Email  string `json:"email"  validate:"nullable,email"`
//	    Status string `json:"status" validate:"nullable,in=UNPAID,PARTIAL,PAID"`
//	}
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Struct validates all exported fields of v that carry a `validate` tag.
// Returns a map of fieldName → message; an empty map means no errors.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)

		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		rules := splitRules(tag)

		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			if rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, name, value, rv); msg != "" {
				errs[name] = msg
				break // first failing rule per field
			}
		}
	}

	return errs
}

// HasErrors reports whether the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

func applyRule(rule, field string, v reflect.Value, parent reflect.Value) string {
	raw := fmt.Sprintf("%v", v.Interface())
	key, param, _ := strings.Cut(rule, "=")

	if fn, ok := ruleFuncs[key]; ok {
		return fn(field, param, raw, v, parent)
	}
	return ""
}

type ruleFunc func(field, param, raw string, v reflect.Value, parent reflect.Value) string

var ruleFuncs = map[string]ruleFunc{
	"required": func(field, _, _ string, v reflect.Value, _ reflect.Value) string {
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}
		return ""
	},
	"email": func(field, _, raw string, _ reflect.Value, _ reflect.Value) string {
		if !emailRE.MatchString(raw) {
			return fmt.Sprintf("The %s must be a valid email address.", field)
		}
		return ""
	},
	"numeric": func(field, _, raw string, _ reflect.Value, _ reflect.Value) string {
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Sprintf("The %s field must be a number.", field)
		}
		return ""
	},
	"integer": func(field, _, raw string, _ reflect.Value, _ reflect.Value) string {
		if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
			return fmt.Sprintf("The %s field must be an integer.", field)
		}
		return ""
	},
	"date": func(field, _, raw string, _ reflect.Value, _ reflect.Value) string {
		if _, err := ParseDate(raw); err != nil {
			return fmt.Sprintf("The %s is not a valid date.", field)
		}
		return ""
	},
	"min": func(field, param, raw string, v reflect.Value, _ reflect.Value) string {
		n := mustParseFloat(param)
		if isNumericKind(v) {
			if toFloat(v) < n {
				return fmt.Sprintf("The %s must be at least %s.", field, param)
			}
		} else if float64(len([]rune(raw))) < n {
			return fmt.Sprintf("The %s must be at least %s characters.", field, param)
		}
		return ""
	},
	"max": func(field, param, raw string, v reflect.Value, _ reflect.Value) string {
		n := mustParseFloat(param)
		if isNumericKind(v) {
			if toFloat(v) > n {
				return fmt.Sprintf("The %s must not be greater than %s.", field, param)
			}
		} else if float64(len([]rune(raw))) > n {
			return fmt.Sprintf("The %s must not exceed %s characters.", field, param)
		}
		return ""
	},
	"gt": func(field, param, _ string, v reflect.Value, _ reflect.Value) string {
		if toFloat(v) <= mustParseFloat(param) {
			return fmt.Sprintf("The %s must be greater than %s.", field, param)
		}
		return ""
	},
	"gte": func(field, param, _ string, v reflect.Value, _ reflect.Value) string {
		if toFloat(v) < mustParseFloat(param) {
			return fmt.Sprintf("The %s must be greater than or equal to %s.", field, param)
		}
		return ""
	},
	"lt": func(field, param, _ string, v reflect.Value, _ reflect.Value) string {
		if toFloat(v) >= mustParseFloat(param) {
			return fmt.Sprintf("The %s must be less than %s.", field, param)
		}
		return ""
	},
	"lte": func(field, param, _ string, v reflect.Value, _ reflect.Value) string {
		if toFloat(v) > mustParseFloat(param) {
			return fmt.Sprintf("The %s must be less than or equal to %s.", field, param)
		}
		return ""
	},
	"in": func(field, param, raw string, _ reflect.Value, _ reflect.Value) string {
		for _, a := range strings.Split(param, ",") {
			if raw == strings.TrimSpace(a) {
				return ""
			}
		}
		return fmt.Sprintf("The selected %s is invalid.", field)
	},
	"confirmed": func(field, _, raw string, _ reflect.Value, parent reflect.Value) string {
		confirm, ok := siblingByJSONName(parent, field+"_confirmation")
		if !ok || fmt.Sprintf("%v", confirm.Interface()) != raw {
			return fmt.Sprintf("The %s confirmation does not match.", field)
		}
		return ""
	},
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var dateLayouts = []string{
	time.RFC3339, "2006-01-02", "2006-01-02 15:04:05", "02/01/2006",
}

// ParseDate tries the common date layouts in order.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as date", s)
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	case reflect.Bool:
		return false // false is a valid value, not empty
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	}
	return false
}

func isNumericKind(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	}
	f, _ := strconv.ParseFloat(fmt.Sprintf("%v", v.Interface()), 64)
	return f
}

func mustParseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func jsonFieldName(f reflect.StructField) string {
	name := f.Tag.Get("json")
	if name == "" || name == "-" {
		return strings.ToLower(f.Name)
	}
	if idx := strings.Index(name, ","); idx != -1 {
		name = name[:idx]
	}
	return name
}

// splitRules splits the validate tag by comma while keeping the multi-value
// parameter of in= intact: "nullable,in=UNPAID,PARTIAL,PAID,max=16" →
// ["nullable", "in=UNPAID,PARTIAL,PAID", "max=16"].
func splitRules(tag string) []string {
	parts := strings.Split(tag, ",")
	var rules []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]
		if !strings.HasPrefix(part, "in=") {
			rules = append(rules, part)
			continue
		}
		// Absorb following parts until one looks like a new rule.
		for i+1 < len(parts) && !looksLikeRule(parts[i+1]) {
			i++
			part += "," + parts[i]
		}
		rules = append(rules, part)
	}
	return rules
}

func looksLikeRule(s string) bool {
	key, _, _ := strings.Cut(s, "=")
	if key == "nullable" {
		return true
	}
	_, ok := ruleFuncs[key]
	return ok
}

func hasRule(rules []string, target string) bool {
	for _, r := range rules {
		if strings.TrimSpace(r) == target {
			return true
		}
	}
	return false
}

func siblingByJSONName(parent reflect.Value, name string) (reflect.Value, bool) {
	rt := parent.Type()
	for i := 0; i < rt.NumField(); i++ {
		if jsonFieldName(rt.Field(i)) == name {
			return parent.Field(i), true
		}
	}
	return reflect.Value{}, false
}
