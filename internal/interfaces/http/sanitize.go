package http

import (
	"reflect"
	"regexp"
	"strings"
)

var (
	reScript     = regexp.MustCompile(`(?is)<script[^>]*>.*?</script\s*>`)
	reJavascript = regexp.MustCompile(`(?i)javascript\s*:`)
	reInlineOn   = regexp.MustCompile(`(?i)\bon\w+\s*=`)
)

// sanitizeString quita bloques <script>, esquemas javascript: y handlers on*= en línea.
func sanitizeString(s string) string {
	s = reScript.ReplaceAllString(s, "")
	s = reJavascript.ReplaceAllString(s, "")
	s = reInlineOn.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// sanitize recorre el struct apuntado por ptr y limpia todos los string y *string,
// incluidos structs embebidos y slices. Los campos con `sanitize:"-"` no se tocan.
func sanitize(ptr any) {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	sanitizeValue(v.Elem())
}

func sanitizeValue(v reflect.Value) {
	switch v.Kind() {
	case reflect.String:
		if v.CanSet() {
			v.SetString(sanitizeString(v.String()))
		}
	case reflect.Pointer:
		if !v.IsNil() {
			sanitizeValue(v.Elem())
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() || f.Tag.Get("sanitize") == "-" {
				continue
			}
			sanitizeValue(v.Field(i))
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			sanitizeValue(v.Index(i))
		}
	}
}
