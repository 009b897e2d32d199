package api

import (
	"encoding/json"
	"testing"
)

func TestFlexBoolUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    bool
		wantErr bool
	}{
		{`true`, true, false},
		{`false`, false, false},
		{`"true"`, true, false},
		{`"Yes"`, true, false},
		{`"y"`, true, false},
		{`"1"`, true, false},
		{`"no"`, false, false},
		{`"0"`, false, false},
		{`""`, false, true},
		{`"maybe"`, false, true},
		{`42`, false, true},
	}
	for _, tt := range tests {
		var b flexBool
		err := json.Unmarshal([]byte(tt.raw), &b)
		if tt.wantErr {
			if err == nil {
				t.Errorf("unmarshal %s succeeded, want error", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("unmarshal %s: %v", tt.raw, err)
			continue
		}
		if bool(b) != tt.want {
			t.Errorf("unmarshal %s = %v, want %v", tt.raw, bool(b), tt.want)
		}
	}
}

func TestFlexFloatUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{`1800`, 1800, false},
		{`1750.5`, 1750.5, false},
		{`"1800"`, 1800, false},
		{`"$1,750.50"`, 1750.5, false},
		{`" 900 "`, 900, false},
		{`""`, 0, false},
		{`"abc"`, 0, true},
		{`true`, 0, true},
	}
	for _, tt := range tests {
		var f flexFloat
		err := json.Unmarshal([]byte(tt.raw), &f)
		if tt.wantErr {
			if err == nil {
				t.Errorf("unmarshal %s succeeded, want error", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("unmarshal %s: %v", tt.raw, err)
			continue
		}
		if float64(f) != tt.want {
			t.Errorf("unmarshal %s = %v, want %v", tt.raw, float64(f), tt.want)
		}
	}
}

func TestFlexIntUnmarshal(t *testing.T) {
	t.Parallel()

	var i flexInt
	if err := json.Unmarshal([]byte(`"3"`), &i); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if int(i) != 3 {
		t.Errorf("value = %d, want 3", int(i))
	}
	if err := json.Unmarshal([]byte(`2.9`), &i); err != nil {
		t.Fatalf("unmarshal float: %v", err)
	}
	if int(i) != 2 {
		t.Errorf("value = %d, want truncated 2", int(i))
	}
}
