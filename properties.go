package gocomp

import "fmt"

// Properties is a read-only view over a validated property bag. Accessors
// return the zero value when the property is absent or has another type,
// which cannot happen for required properties of a validated bag.
type Properties struct {
	bag PropertyBag
}

// NewProperties wraps bag without validating it. The engine passes validated
// bags; tests and adapters may use it directly.
func NewProperties(bag PropertyBag) Properties {
	return Properties{bag: bag}
}

// Has reports whether name was supplied.
func (p Properties) Has(name string) bool {
	_, ok := p.bag[name]
	return ok
}

// Value returns the raw value of name.
func (p Properties) Value(name string) (any, bool) {
	v, ok := p.bag[name]
	return v, ok
}

// String returns the string value of name.
func (p Properties) String(name string) string {
	v, _ := plain(p.bag[name])
	s, _ := v.(string)
	return s
}

// Number returns the numeric value of name.
func (p Properties) Number(name string) float64 {
	f, _ := toFloat(p.bag[name])
	return f
}

// Int returns the numeric value of name truncated to an int.
func (p Properties) Int(name string) int {
	return int(p.Number(name))
}

// Bool returns the boolean value of name.
func (p Properties) Bool(name string) bool {
	v, _ := plain(p.bag[name])
	b, _ := v.(bool)
	return b
}

// Text renders the value of name as text: strings verbatim, numbers in their
// shortest decimal form and booleans as true/false. Absent properties render
// as the empty string.
func (p Properties) Text(name string) string {
	v, ok := p.bag[name]
	if !ok {
		return ""
	}
	lit, ok := plain(v)
	if !ok {
		return fmt.Sprint(v)
	}
	if f, isNum := lit.(float64); isNum {
		return formatNumber(f)
	}
	return fmt.Sprint(lit)
}

// Bag returns a copy of the underlying property bag.
func (p Properties) Bag() PropertyBag {
	out := make(PropertyBag, len(p.bag))
	for k, v := range p.bag {
		out[k] = v
	}
	return out
}
