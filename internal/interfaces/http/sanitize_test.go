package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeString(t *testing.T) {
	cases := map[string]string{
		"  Feijoada  ":                          "Feijoada",
		"<script>alert('x')</script>Arroz":      "Arroz",
		"<SCRIPT src=x>\n</SCRIPT >ok":          "ok",
		`<a href="javascript:alert(1)">x</a>`:   `<a href="alert(1)">x</a>`,
		`<img src=x onerror=alert(1)>`:          `<img src=x alert(1)>`,
		"Pão de queijo":                         "Pão de queijo",
	}
	for in, want := range cases {
		assert.Equal(t, want, sanitizeString(in), in)
	}
}

func TestSanitize_RecorreStructsPunterosYSlices(t *testing.T) {
	type inner struct {
		Note *string
	}
	type input struct {
		inner
		Name     string
		Password string `sanitize:"-"`
		Tags     []string
		hidden   string
	}
	note := " <script>x</script>nota "
	in := &input{
		inner:    inner{Note: &note},
		Name:     " Ana ",
		Password: " <script>x</script> ",
		Tags:     []string{" a ", "javascript:b"},
		hidden:   " h ",
	}
	sanitize(in)

	assert.Equal(t, "Ana", in.Name)
	assert.Equal(t, " <script>x</script> ", in.Password)
	assert.Equal(t, []string{"a", "b"}, in.Tags)
	assert.Equal(t, " h ", in.hidden)
	assert.Equal(t, " <script>x</script>nota ", *in.Note, "embebido no exportado no se toca")
}

func TestFieldPath(t *testing.T) {
	assert.Equal(t, "name", fieldPath("CreateEmployeeRequest.name"))
	assert.Equal(t, "lunchValue", fieldPath("CreateEmployeeRequest.ShiftSettingsInput.lunchValue"))
	assert.Equal(t, "configs[0].value", fieldPath("UpdateShiftConfigRequest.configs[0].value"))
	assert.Equal(t, "limit", fieldPath("AuditLogQuery.PageRequest.limit"))
}

func TestDetailsJSON_QuitaPassword(t *testing.T) {
	got := detailsJSON(map[string]any{"email": "a@b.c", "password": "secreta"})
	assert.JSONEq(t, `{"email":"a@b.c"}`, got)
	assert.Equal(t, "", detailsJSON(nil))
}
