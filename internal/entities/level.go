package entities

import "adaptive-mapper/internal/metadata"

// Level is an organizational level.
type Level struct {
	metadata.Node

	Code      string
	Name      string
	ShortName string
	Currency  string
}

func (l *Level) Equal(other metadata.Entity) bool {
	o, ok := other.(*Level)
	if !ok || l == nil || o == nil {
		return ok && l == o
	}

	return l.Code == o.Code &&
		l.Name == o.Name &&
		l.ShortName == o.ShortName &&
		l.Currency == o.Currency &&
		l.SameMeta(&o.Node)
}

// Levels is the field mapping for Level.
var Levels = &Codec[*Level]{
	Name:      "level",
	Item:      "level",
	Container: "levels",
	Export:    "exportLevels",
	Update:    "updateLevels",
	New:       func() *Level { return &Level{} },
	Fields: []Field[*Level]{
		{"code", func(l *Level) string { return l.Code }, func(l *Level, v string) { l.Code = v }},
		{"name", func(l *Level) string { return l.Name }, func(l *Level, v string) { l.Name = v }},
		{"shortName", func(l *Level) string { return l.ShortName }, func(l *Level, v string) { l.ShortName = v }},
		{"currency", func(l *Level) string { return l.Currency }, func(l *Level, v string) { l.Currency = v }},
	},
}
