package glint

import (
	"strconv"
	"strings"
)

// Attribute is a vertex input declaration extracted from a GLSL listing.
// Location is -1 when the declaration carries no layout qualifier.
type Attribute struct {
	Name     string
	Type     string
	Location int
}

// Uniform is a uniform declaration extracted from a GLSL listing.
type Uniform struct {
	Name string
	Type string
}

// ScanInterface extracts the `in` and `uniform` declarations from a GLSL
// stage listing. It reads declaration lines only; it is an interface
// check, not a compiler. Real compile errors stay the job of whatever
// pipeline consumes the listing.
func ScanInterface(src string) ([]Attribute, []Uniform) {
	var attrs []Attribute
	var uniforms []Uniform

	for _, line := range strings.Split(src, "\n") {
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ";"))

		location := -1
		if strings.HasPrefix(line, "layout") {
			open := strings.Index(line, "(")
			end := strings.Index(line, ")")
			if open < 0 || end < open {
				continue
			}
			location = parseLocation(line[open+1 : end])
			line = strings.TrimSpace(line[end+1:])
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			continue
		}
		switch fields[0] {
		case "in":
			attrs = append(attrs, Attribute{Name: fields[2], Type: fields[1], Location: location})
		case "uniform":
			uniforms = append(uniforms, Uniform{Name: fields[2], Type: fields[1]})
		}
	}
	return attrs, uniforms
}

func parseLocation(qualifiers string) int {
	for _, part := range strings.Split(qualifiers, ",") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 || strings.TrimSpace(kv[0]) != "location" {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimSpace(kv[1])); err == nil {
			return n
		}
	}
	return -1
}

func findAttribute(attrs []Attribute, name string) (Attribute, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

func findUniform(uniforms []Uniform, name string) (Uniform, bool) {
	for _, u := range uniforms {
		if u.Name == name {
			return u, true
		}
	}
	return Uniform{}, false
}
