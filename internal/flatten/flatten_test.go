package flatten

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adaptive-mapper/internal/entities"
	"adaptive-mapper/internal/metadata"
	"adaptive-mapper/internal/xmltree"
)

const levelsExport = `<?xml version="1.0" encoding="UTF-8"?>
<response success="true">
  <output>
    <levels seqNo="3" displayNameType="NAME">
      <level id="1" code="Company" name="Company" shortName="Co" currency="USD">
        <attributes>
          <attribute attributeId="17" name="Region" valueId="171" value="North"/>
        </attributes>
        <level id="2" code="East" name="East Region" shortName="East" currency="USD">
          <level id="4" code="Boston" name="Boston Office" shortName="BOS" currency="USD"/>
        </level>
        <level id="3" code="West" name="West Region" shortName="West" currency="CAD">
          <attributes>
            <attribute attributeId="17" name="Region" valueId="172" value="South"/>
            <attribute attributeId="18" name="Owner" valueId="" value="Pat"/>
          </attributes>
        </level>
      </level>
      <level id="5" code="Holding" name="Holding" shortName="Hold" currency="EUR"/>
    </levels>
  </output>
</response>`

func TestFlatten_Levels(t *testing.T) {
	root, err := xmltree.ParseString(levelsExport)
	require.NoError(t, err)

	list, err := Flatten(root, entities.Levels)
	require.NoError(t, err)

	require.Equal(t, []int{1, 2, 4, 3, 5}, list.IDs())

	company, _ := list.FindByID(1)
	east, _ := list.FindByID(2)
	boston, _ := list.FindByID(4)
	west, _ := list.FindByID(3)
	holding, _ := list.FindByID(5)

	assert.Equal(t, "Company", company.Code)
	assert.Equal(t, "CAD", west.Currency)
	assert.Equal(t, "BOS", boston.ShortName)

	assert.Nil(t, company.Parent())
	assert.Same(t, company, east.Parent())
	assert.Same(t, east, boston.Parent())
	assert.Same(t, company, west.Parent())
	assert.Nil(t, holding.Parent())

	assert.Equal(t, 2, metadata.Depth(boston))
	assert.Len(t, company.Children(), 2)

	require.Len(t, company.Attributes(), 1)
	assert.Equal(t, metadata.Attribute{AttributeID: 17, Name: "Region", ValueID: "171", Value: "North"}, company.Attributes()[0])

	owner, ok := west.Attribute(18)
	require.True(t, ok)
	assert.Equal(t, "Pat", owner.Value)
	assert.Empty(t, east.Attributes())
}

func TestFlatten_DimensionValuesUnderDimension(t *testing.T) {
	root, err := xmltree.ParseString(`<response success="true"><output><dimensions>
		<dimension id="9" name="Geography" code="Geo">
			<properties><property name="Color" value="Blue"/></properties>
			<attributes><attribute attributeId="1" name="dimension level" value="ignored"/></attributes>
			<dimensionValue id="91" name="Americas" code="AM" description="" shortName="AM">
				<dimensionValue id="92" name="Canada" code="CA" description="Canada" shortName="CA"/>
			</dimensionValue>
			<dimensionValue id="93" name="Europe" code="EU" description="" shortName="EU"/>
		</dimension>
		<dimension id="10" name="Product" code="Prod"/>
	</dimensions></output></response>`)
	require.NoError(t, err)

	pairs, err := Pairs(root, entities.DimensionValues)
	require.NoError(t, err)
	require.Len(t, pairs, 3)

	assert.Equal(t, "Americas", pairs[0].Item.Name)
	assert.Same(t, pairs[0].Item, pairs[1].Item.Parent())
	assert.Nil(t, pairs[2].Item.Parent())
	assert.Equal(t, "92", pairs[1].Element.SelectAttrValue("id", ""))

	for _, p := range pairs {
		assert.Empty(t, p.Item.Attributes())
	}
}

func TestFlatten_OverlaysOutsideItemsIgnored(t *testing.T) {
	root, err := xmltree.ParseString(`<response success="true"><output>
		<attributes><attribute attributeId="9" name="Stray" valueId="91" value="Output"/></attributes>
		<accounts>
			<attributes><attribute attributeId="9" name="Stray" valueId="92" value="Container"/></attributes>
			<attribute attributeId="9" name="Stray" valueId="93" value="Bare"/>
			<account id="1" code="Assets" name="Assets" accountTypeCode="A" description="" shortName="">
				<account id="2" code="Cash" name="Cash" accountTypeCode="A" description="" shortName=""/>
			</account>
		</accounts>
	</output></response>`)
	require.NoError(t, err)

	list, err := Flatten(root, entities.Accounts)
	require.NoError(t, err)

	require.Equal(t, []int{1, 2}, list.IDs())

	for _, a := range list.Items() {
		assert.Empty(t, a.Attributes(), "account %d", a.ID)

		_, ok := a.Attribute(9)
		assert.False(t, ok, "account %d", a.ID)
	}
}

func TestFlatten_EmptyAndNil(t *testing.T) {
	root, err := xmltree.ParseString(`<response success="true"><output><accounts/></output></response>`)
	require.NoError(t, err)

	list, err := Flatten(root, entities.Accounts)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Len())

	pairs, err := Pairs(nil, entities.Accounts)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestFlatten_ContainerItself(t *testing.T) {
	root, err := xmltree.ParseString(`<accounts><account id="1" name="Cash"/><account id="2" name="Bank"/></accounts>`)
	require.NoError(t, err)

	list, err := Flatten(root, entities.Accounts)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, list.IDs())
}

func TestFlatten_Errors(t *testing.T) {
	tests := []struct {
		name    string
		xml     string
		wantMsg string
	}{
		{
			name:    "non numeric id",
			xml:     `<accounts><account id="1"><account id="two"/></account></accounts>`,
			wantMsg: "/accounts/account[@id='1']/account[@id='two']",
		},
		{
			name:    "overlay without attributeId",
			xml:     `<accounts><account id="1"><attributes><attribute name="Region" value="x"/></attributes></account></accounts>`,
			wantMsg: "missing attributeId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := xmltree.ParseString(tt.xml)
			require.NoError(t, err)

			_, err = Flatten(root, entities.Accounts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDecodeAttribute_MissingValueIsEmpty(t *testing.T) {
	el, err := xmltree.ParseString(`<attribute attributeId="5" name="Owner"/>`)
	require.NoError(t, err)

	a, err := DecodeAttribute(el)
	require.NoError(t, err)
	assert.Equal(t, metadata.Attribute{AttributeID: 5, Name: "Owner"}, a)
}
