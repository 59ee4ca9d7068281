package anim

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matt-g-everett/animtx/transform"
)

// ParseProperty turns an authored value string into a Property.
// Supported forms: plain numbers ("0.5"), numbers with px/deg units,
// hex colours ("#20a0ff"), and transform lists
// ("translateX(50%) rotate(45deg) scale(2)").
func ParseProperty(s string) (Property, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Property{}, fmt.Errorf("anim: empty property value")
	}

	if strings.HasPrefix(s, "#") {
		c, err := HexColour(s)
		if err != nil {
			return Property{}, err
		}
		return Property{Value: c, Unit: UnitColour}, nil
	}

	if strings.Contains(s, "(") {
		t, err := parseTransform(s)
		if err != nil {
			return Property{}, err
		}
		return Property{Value: TransformRef{Transform: t}, Unit: UnitTransform}, nil
	}

	unit := UnitNumber
	num := s
	switch {
	case strings.HasSuffix(s, "px"):
		unit = UnitPx
		num = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "deg"):
		unit = UnitDeg
		num = strings.TrimSuffix(s, "deg")
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Property{}, fmt.Errorf("anim: bad value %q: %w", s, err)
	}
	return Property{Value: Float(f), Unit: unit}, nil
}

// parseTransform scans a whitespace-separated list of
// name(arg, arg, ...) groups.
func parseTransform(s string) (*transform.Transform, error) {
	t := transform.NewTransform()

	for len(s) > 0 {
		s = strings.TrimSpace(s)
		if s == "" {
			break
		}

		open := strings.IndexByte(s, '(')
		if open < 0 {
			return nil, fmt.Errorf("anim: expected transform function at %q", s)
		}
		end := strings.IndexByte(s, ')')
		if end < open {
			return nil, fmt.Errorf("anim: unbalanced parentheses in %q", s)
		}

		name := strings.TrimSpace(s[:open])
		kind, ok := transform.KindByName(name)
		if !ok {
			return nil, fmt.Errorf("anim: unknown transform function %q", name)
		}

		args, err := parseArgs(s[open+1 : end])
		if err != nil {
			return nil, fmt.Errorf("anim: %s: %w", name, err)
		}

		p, err := transform.NewPrimitive(kind, args...)
		if err != nil {
			return nil, err
		}
		t.AddPrimitive(p)

		s = s[end+1:]
	}

	if len(t.Primitives()) == 0 {
		return nil, fmt.Errorf("anim: empty transform")
	}
	return t, nil
}

var argUnits = []struct {
	suffix string
	unit   transform.Unit
}{
	{"px", transform.Px},
	{"%", transform.Percent},
	{"em", transform.Em},
	{"vw", transform.Vw},
	{"vh", transform.Vh},
	{"deg", transform.Deg},
	{"rad", transform.Rad},
}

func parseArgs(s string) ([]Length, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	args := make([]Length, 0, len(fields))
	for _, f := range fields {
		unit := transform.Number
		num := f
		for _, u := range argUnits {
			if strings.HasSuffix(f, u.suffix) {
				unit = u.unit
				num = strings.TrimSuffix(f, u.suffix)
				break
			}
		}
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return nil, fmt.Errorf("bad argument %q: %w", f, err)
		}
		args = append(args, Length{N: n, U: unit})
	}
	return args, nil
}

// Length aliases the transform argument type for parse callers.
type Length = transform.Length
