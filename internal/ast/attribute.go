package ast

// Attribute is a '#[...]' annotation attached to a declaration or member.
type Attribute interface {
	isAttribute()
}

// AttributeWord is a bare '#[word]' attribute with no argument list.
type AttributeWord struct {
	Name Located[string]
}

func (AttributeWord) isAttribute() {}

// AttributeList is a '#[word(item, item, ...)]' attribute.
type AttributeList struct {
	Name  Located[string]
	Items []Located[AttributeItem]
}

func (AttributeList) isAttribute() {}

// AttributeItem is one entry inside an attribute's argument list: a bare
// value or a 'name = value' pair.
type AttributeItem interface {
	isAttributeItem()
}

// AttrItemWord is a bare value inside an attribute's argument list.
type AttrItemWord struct {
	Value Located[Value]
}

func (AttrItemWord) isAttributeItem() {}

// AttrItemNameValue is a 'name = value' pair inside an attribute's
// argument list.
type AttrItemNameValue struct {
	Name  Located[string]
	Value Located[Value]
}

func (AttrItemNameValue) isAttributeItem() {}
