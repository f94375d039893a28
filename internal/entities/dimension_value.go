package entities

import "adaptive-mapper/internal/metadata"

// DimensionValue is one value of a dimension, e.g. a region in Geography.
type DimensionValue struct {
	metadata.Node

	Name        string
	Code        string
	Description string
	ShortName   string
}

func (d *DimensionValue) Equal(other metadata.Entity) bool {
	o, ok := other.(*DimensionValue)
	if !ok || d == nil || o == nil {
		return ok && d == o
	}

	return d.Name == o.Name &&
		d.Code == o.Code &&
		d.Description == o.Description &&
		d.ShortName == o.ShortName &&
		d.SameMeta(&o.Node)
}

// DimensionValues is the field mapping for DimensionValue. Values are
// exported nested under their <dimension>, which the flattener descends.
var DimensionValues = &Codec[*DimensionValue]{
	Name:      "dimension_value",
	Item:      "dimensionValue",
	Container: "dimensionValues",
	Export:    "exportDimensions",
	Update:    "updateDimensionValues",
	New:       func() *DimensionValue { return &DimensionValue{} },
	Fields: []Field[*DimensionValue]{
		{"name", func(d *DimensionValue) string { return d.Name }, func(d *DimensionValue, v string) { d.Name = v }},
		{"code", func(d *DimensionValue) string { return d.Code }, func(d *DimensionValue, v string) { d.Code = v }},
		{"description", func(d *DimensionValue) string { return d.Description }, func(d *DimensionValue, v string) { d.Description = v }},
		{"shortName", func(d *DimensionValue) string { return d.ShortName }, func(d *DimensionValue, v string) { d.ShortName = v }},
	},
}
