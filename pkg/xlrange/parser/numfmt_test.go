package parser

import "testing"

func TestIsDateFormat(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"yyyy-mm-dd", true},
		{"d/m/yy", true},
		{"h:mm AM/PM", true},
		{"[h]:mm:ss", true},
		{"[mm]", true},
		{"[$-409]mmmm d, yyyy", true},
		{"General", false},
		{"0.00", false},
		{"#,##0", false},
		{"0.00E+00", false},
		{`"$"#,##0.00`, false},
		{`"days" 0`, false},
		{`0\d`, false},
		{"[Red]0.00", false},
		{"0.00;[Red]yyyy", false},
		{"_(* #,##0_)", false},
		{"@", false},
		{"", false},
	}

	for _, tt := range tests {
		if result := IsDateFormat(tt.code); result != tt.expected {
			t.Errorf("IsDateFormat(%q) = %v, expected %v", tt.code, result, tt.expected)
		}
	}
}

func TestIsBuiltInDateFormat(t *testing.T) {
	for _, id := range []int{14, 17, 22, 45, 47} {
		if !IsBuiltInDateFormat(id) {
			t.Errorf("IsBuiltInDateFormat(%d) = false, expected true", id)
		}
	}
	for _, id := range []int{0, 1, 2, 10, 13, 23, 44, 48, 49} {
		if IsBuiltInDateFormat(id) {
			t.Errorf("IsBuiltInDateFormat(%d) = true, expected false", id)
		}
	}
}
