package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The webhook integrations that feed /negotiations stringify most scalar
// values, so the request types below accept both native JSON scalars and
// their quoted forms.

type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	var native bool
	if err := json.Unmarshal(data, &native); err == nil {
		*b = flexBool(native)
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("value %s is not a boolean", data)
	}
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "true", "yes", "y", "1":
		*b = true
	case "false", "no", "n", "0":
		*b = false
	default:
		return fmt.Errorf("value %q is not a boolean", text)
	}
	return nil
}

type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	var native float64
	if err := json.Unmarshal(data, &native); err == nil {
		*f = flexFloat(native)
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("value %s is not a number", data)
	}
	text = strings.TrimSpace(strings.ReplaceAll(text, ",", ""))
	text = strings.TrimPrefix(text, "$")
	if text == "" {
		*f = 0
		return nil
	}
	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("value %q is not a number", text)
	}
	*f = flexFloat(parsed)
	return nil
}

type flexInt int

func (i *flexInt) UnmarshalJSON(data []byte) error {
	var f flexFloat
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	*i = flexInt(f)
	return nil
}
