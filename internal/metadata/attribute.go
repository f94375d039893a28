package metadata

// ClearedValueID is the vendor's wire value for "no value assigned".
const ClearedValueID = "0"

// Attribute assigns a value of a named classification attribute to an item.
// It is a value type: setting it on an item stores a copy.
type Attribute struct {
	AttributeID int    `yaml:"attribute_id"`
	Name        string `yaml:"name"`
	ValueID     string `yaml:"value_id"`
	Value       string `yaml:"value"`
}

// Cleared returns a copy of a that instructs the remote system to remove the value.
func (a Attribute) Cleared() Attribute {
	a.ValueID = ClearedValueID
	a.Value = ""

	return a
}

// IsCleared returns true if a carries the cleared sentinel.
func (a Attribute) IsCleared() bool {
	return a.ValueID == ClearedValueID
}
