package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a float that decodes from either a JSON number or a numeric
// string, since the web client sends form values as text.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", raw)
	}
	// NaN and the infinities parse but cannot be written back out as JSON.
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("invalid number %q", raw)
	}
	*n = Number(f)
	return nil
}

func (n Number) Float64() float64 {
	return float64(n)
}

// centsEpsilon absorbs binary float error such as 19.99*100 = 1998.9999...
const centsEpsilon = 1e-6

// Cents converts a decimal currency amount to whole minor units, dropping
// any fraction of a cent.
func (n Number) Cents() int64 {
	return int64(math.Floor(n.Float64()*100 + centsEpsilon))
}
