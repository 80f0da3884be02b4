package view

import (
	"sort"
)

var stylersRegistered []Styler

// RegisterStyler ...
func RegisterStyler(s Styler) {
	stylersRegistered = append(stylersRegistered, s)
}

// AllStylers returns all registered stylers
func AllStylers() []Styler {
	return stylersRegistered
}

var mapStyler map[string]Styler

// GetRegStylerByName returns a registered styler prototype
func GetRegStylerByName(name string) Styler {
	if mapStyler == nil {
		mapStyler = make(map[string]Styler)
		for _, s := range stylersRegistered {
			if s == nil {
				continue
			}
			mapStyler[s.Name()] = s
		}
	}
	s, ok := mapStyler[name]
	if ok && s != nil {
		return s
	}
	return nil
}

// RegStylerNames returns the names of all registered stylers, sorted
func RegStylerNames() []string {
	names := make([]string, 0, len(stylersRegistered))
	for _, s := range stylersRegistered {
		if s == nil {
			continue
		}
		names = append(names, s.Name())
	}
	sort.Strings(names)
	return names
}
