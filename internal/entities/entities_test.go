package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adaptive-mapper/internal/metadata"
	"adaptive-mapper/internal/xmltree"
)

func TestAccountCodec_DecodeEncode(t *testing.T) {
	el, err := xmltree.ParseString(`<account id="12341" code="First_Account_Code" name="First Account Name" ` +
		`accountTypeCode="A" description="First Account Description" shortName="First Account" status="updated"/>`)
	require.NoError(t, err)

	a, err := Accounts.Decode(el)
	require.NoError(t, err)

	assert.Equal(t, 12341, a.ID)
	assert.Equal(t, "First_Account_Code", a.Code)
	assert.Equal(t, "A", a.AccountTypeCode)
	assert.Equal(t, "First Account", a.ShortName)

	attrs := Accounts.Encode(a)
	keys := make([]string, 0, len(attrs))
	for _, at := range attrs {
		keys = append(keys, at.Key)
	}

	assert.Equal(t, []string{"code", "name", "accountTypeCode", "description", "shortName"}, keys)
	assert.Equal(t, "First Account Name", Accounts.FieldValues(a)["name"])
}

func TestAccountCodec_EncodeKeepsEmptyFields(t *testing.T) {
	attrs := Accounts.Encode(&Account{Name: "Cash"})

	got := map[string]string{}
	for _, at := range attrs {
		got[at.Key] = at.Value
	}

	assert.Equal(t, map[string]string{
		"code":            "",
		"name":            "Cash",
		"accountTypeCode": "",
		"description":     "",
		"shortName":       "",
	}, got)
}

func TestCodec_DecodeMissingAndBadID(t *testing.T) {
	el, err := xmltree.ParseString(`<level name="new"/>`)
	require.NoError(t, err)

	l, err := Levels.Decode(el)
	require.NoError(t, err)
	assert.Equal(t, 0, l.ID)
	assert.Equal(t, "new", l.Name)

	el, err = xmltree.ParseString(`<level id="abc"/>`)
	require.NoError(t, err)

	_, err = Levels.Decode(el)
	require.Error(t, err)
}

func TestEqual_ByValue(t *testing.T) {
	a := &Account{Node: metadata.Node{ID: 1001}, Code: "10001", Name: "Cash"}
	b := &Account{Node: metadata.Node{ID: 1001}, Code: "10001", Name: "Cash"}
	c := &Account{Node: metadata.Node{ID: 1001}, Code: "10001", Name: "Petty Cash"}

	assert.True(t, metadata.Equal(a, b))
	assert.False(t, metadata.Equal(a, c))
	assert.False(t, metadata.Equal(a, &Level{Node: metadata.Node{ID: 1001}}))

	d1 := &DimensionValue{Node: metadata.Node{ID: 5}, Name: "Alabama"}
	d2 := &DimensionValue{Node: metadata.Node{ID: 5}, Name: "Alabama"}
	d2.SetAttribute(metadata.Attribute{AttributeID: 21, Name: "Education Type", ValueID: "196", Value: "Management"})
	assert.False(t, metadata.Equal(d1, d2))
}

func TestLookup(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr string
	}{
		{"account", TypeAccount, ""},
		{"Accounts", TypeAccount, ""},
		{"levels", TypeLevel, ""},
		{"dimensionValue", TypeDimensionValue, ""},
		{"dimension-values", TypeDimensionValue, ""},
		{"acount", "", "did you mean account"},
		{"zzz", "", "known: account, level, dimension_value"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			info, err := Lookup(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, info.Name)
		})
	}
}

func TestTypes(t *testing.T) {
	types := Types()
	require.Len(t, types, 3)
	assert.Equal(t, "updateAccounts", types[0].Update)
	assert.Equal(t, "levels", types[1].Container)
	assert.Equal(t, "dimensionValue", types[2].Item)
}
