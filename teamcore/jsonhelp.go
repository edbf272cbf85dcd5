package teamcore

import (
	"encoding/json"
	"fmt"
)

// decodeNameOrInt inspects a JSON value that is expected to be either a
// string (the canonical enum name) or a number (the underlying ID). Both
// forms are accepted on input; MarshalJSON always emits the string form.
func decodeNameOrInt(data []byte) (name string, isName bool, num int, isNum bool, err error) {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s, true, 0, false, nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		return "", false, n, true, nil
	}

	return "", false, 0, false, fmt.Errorf("teamcore: value %s is neither a string name nor an integer ID", data)
}
