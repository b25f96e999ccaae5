package themes

import (
	"strings"
)

// StyleSheet is a StyleTarget that collects properties and renders them as a
// :root rule. The zero value is ready to use.
type StyleSheet struct {
	props []Variable
	attrs []Variable
}

var _ StyleTarget = (*StyleSheet)(nil)

// SetProperty records name, replacing an earlier value in place.
func (s *StyleSheet) SetProperty(name, value string) error {
	s.props = upsert(s.props, name, value)
	return nil
}

// SetAttribute records a root element attribute.
func (s *StyleSheet) SetAttribute(name, value string) error {
	s.attrs = upsert(s.attrs, name, value)
	return nil
}

// Attribute returns a recorded attribute value.
func (s *StyleSheet) Attribute(name string) (string, bool) {
	for _, attr := range s.attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// CSS renders the collected properties.
func (s *StyleSheet) CSS() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, prop := range s.props {
		b.WriteString("  ")
		b.WriteString(prop.Name)
		b.WriteString(": ")
		b.WriteString(prop.Value)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// CSS renders the stylesheet for a palette, like applying it to a fresh
// StyleSheet.
func CSS(name Name) (string, error) {
	var sheet StyleSheet
	if err := Apply(&sheet, name); err != nil {
		return "", err
	}
	return sheet.CSS(), nil
}

func upsert(list []Variable, name, value string) []Variable {
	for i := range list {
		if list[i].Name == name {
			list[i].Value = value
			return list
		}
	}
	return append(list, Variable{Name: name, Value: value})
}
