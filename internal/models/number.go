package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number decodes from a JSON number or from a string holding one, so form
// clients that send "30" for a numeric field are accepted. Anything that does
// not parse as a finite number is a decode error.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("cast to Number failed for value %s", string(b))
	}
	*n = Number(f)
	return nil
}

// Float64 returns nil for a nil Number, which keeps "field absent" distinct
// from zero.
func (n *Number) Float64() *float64 {
	if n == nil {
		return nil
	}
	f := float64(*n)
	return &f
}
