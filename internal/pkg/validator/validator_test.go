package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"ABCD1234", "00000000", "ZZZZZZZZ"}
	invalid := []string{"abcd1234", "ABCD123", "ABCD12345", "ABCD 123", ""}
	for _, code := range valid {
		if !IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"admin01", "a.b-c_d", "abc"}
	invalid := []string{"ab", "has space", "", "semi;colon"}
	for _, u := range valid {
		if !IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = true, want false", u)
		}
	}
}

func TestIsValidHHMM(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	invalid := []string{"24:00", "9:30", "12:60", "1230", "", "12:3"}
	for _, s := range valid {
		if !IsValidHHMM(s) {
			t.Errorf("IsValidHHMM(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidHHMM(s) {
			t.Errorf("IsValidHHMM(%q) = true, want false", s)
		}
	}
}

func TestHHMMToMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"23:59", 1439},
		{"bogus", 0},
		{"", 0},
	}
	for _, c := range cases {
		got := HHMMToMinutes(c.input)
		if got != c.want {
			t.Errorf("HHMMToMinutes(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestMinutesToHHMM(t *testing.T) {
	cases := []struct {
		input int
		want  string
	}{
		{0, "0:00"},
		{-5, "0:00"},
		{59, "0:59"},
		{570, "9:30"},
		{630, "10:30"},
		{1439, "23:59"},
	}
	for _, c := range cases {
		got := MinutesToHHMM(c.input)
		if got != c.want {
			t.Errorf("MinutesToHHMM(%d) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "employee_code", Message: "invalid"},
		{Field: "punch_type", Message: "required"},
	}
	got := errs.Error()
	want := "employee_code: invalid; punch_type: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "employee_code", Message: "invalid"},
		{Field: "punch_type", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"employee_code": "invalid", "punch_type": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
