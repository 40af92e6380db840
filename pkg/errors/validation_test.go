package errors

import (
	"strings"
	"testing"
)

// checkValidation asserts err is nil, or carries wantCode when wantErr.
func checkValidation(t *testing.T, err error, wantErr bool, wantCode Code) {
	t.Helper()
	if !wantErr {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		return
	}
	if err == nil {
		t.Error("expected an error, got nil")
		return
	}
	if got := GetCode(err); got != wantCode {
		t.Errorf("error code = %s, want %s", got, wantCode)
	}
}

func TestValidateNodeID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"plain", "main", false},
		{"file qualified", "main::main.py", false},
		{"method style", "Calculator.add", false},
		{"dashed", "my-func", false},
		{"unicode", "calculé::main.py", false},
		{"at max length", strings.Repeat("x", 512), false},

		{"empty", "", true},
		{"over max length", strings.Repeat("x", 513), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"carriage return", "foo\rbar", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkValidation(t, ValidateNodeID(tt.id), tt.wantErr, ErrCodeMalformedInput)
		})
	}
}

func TestValidateFileAttr(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr bool
	}{
		{"basename", "main.py", false},
		{"nested path", "pkg/utils.py", false},
		{"dunder", "__init__.py", false},
		{"at max length", strings.Repeat("f", 500), false},

		{"empty", "", true},
		{"over max length", strings.Repeat("f", 501), true},
		{"null byte", "main\x00.py", true},
		{"control char", "main\x01.py", true},
		{"newline", "main\n.py", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkValidation(t, ValidateFileAttr(tt.file), tt.wantErr, ErrCodeMalformedInput)
		})
	}
}

func TestValidateDirection(t *testing.T) {
	tests := []struct {
		name    string
		dir     string
		wantErr bool
	}{
		{"top to bottom", "TB", false},
		{"left to right", "LR", false},

		{"empty", "", true},
		{"lowercase", "tb", true},
		{"bottom to top", "BT", true},
		{"right to left", "RL", true},
		{"garbage", "sideways", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkValidation(t, ValidateDirection(tt.dir), tt.wantErr, ErrCodeInvalidDirection)
		})
	}
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"dot", "dot", false},
		{"svg", "svg", false},
		{"png", "png", false},
		{"json", "json", false},
		{"uppercase accepted", "SVG", false},

		{"empty", "", true},
		{"pdf", "pdf", true},
		{"garbage", "bitmap", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkValidation(t, ValidateOutputFormat(tt.format), tt.wantErr, ErrCodeInvalidFormat)
		})
	}
}
