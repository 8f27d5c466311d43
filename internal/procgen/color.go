package procgen

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HSL is a colour in hue/saturation/lightness form. S and L are percentages.
type HSL struct {
	H float64
	S float64
	L float64
}

// Span is an inclusive-exclusive [Min, Max) range sampled uniformly.
type Span struct {
	Min float64
	Max float64
}

func (s Span) sample(r *Random) float64 {
	return r.Range(s.Min, s.Max)
}

// Color draws a colour on its own stream: the hue jitters ±15° around
// baseHue, saturation and lightness come from the given spans.
func Color(seed int64, baseHue float64, saturation, lightness Span) HSL {
	r := New(seed)
	hue := math.Mod(baseHue+float64(r.Next()*30)-15, 360)
	return HSL{
		H: hue,
		S: saturation.sample(r),
		L: lightness.sample(r),
	}
}

// String renders the colour as a CSS hsl() value.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)", formatNumber(c.H), formatNumber(c.S), formatNumber(c.L))
}

func (c HSL) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *HSL) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseHSL(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseHSL reads a value produced by HSL.String.
func ParseHSL(s string) (HSL, error) {
	body, ok := strings.CutPrefix(strings.TrimSpace(s), "hsl(")
	if !ok {
		return HSL{}, fmt.Errorf("invalid hsl colour %q", s)
	}
	body, ok = strings.CutSuffix(body, ")")
	if !ok {
		return HSL{}, fmt.Errorf("invalid hsl colour %q", s)
	}

	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return HSL{}, fmt.Errorf("invalid hsl colour %q", s)
	}

	values := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(p), "%"), 64)
		if err != nil {
			return HSL{}, fmt.Errorf("invalid hsl component %q: %w", p, err)
		}
		values[i] = v
	}
	return HSL{H: values[0], S: values[1], L: values[2]}, nil
}

func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
