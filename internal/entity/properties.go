package entity

import "strings"

// Properties is a flat CRM property mapping.
type Properties map[string]string

// Clean trims every value and drops the ones left empty, so the CRM never receives "".
func Clean(p Properties) Properties {
	cleaned := make(Properties, len(p))

	for k, v := range p {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}

		cleaned[k] = v
	}

	return cleaned
}
