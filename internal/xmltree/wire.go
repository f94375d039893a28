package xmltree

// Element and attribute names shared by every item type on the wire.
const (
	TagAttributes = "attributes"
	TagAttribute  = "attribute"
	TagMessage    = "message"

	AttrID          = "id"
	AttrAttributeID = "attributeId"
	AttrName        = "name"
	AttrValueID     = "valueId"
	AttrValue       = "value"
	AttrStatus      = "status"
	AttrMessage     = "message"
	AttrSuccess     = "success"
	AttrType        = "type"
)
