package ast

// ServiceBody is the contents of a 'service Name { ... }' declaration.
type ServiceBody struct {
	Name    Located[string]
	Members []ServiceMember
}

// ServiceMember is a member of a service body: an endpoint or a nested
// declaration.
type ServiceMember interface {
	serviceMemberNode()
}

// EndpointMember wraps a single endpoint definition, plus its doc comment
// and attributes.
type EndpointMember struct {
	Item *Item[Endpoint]
}

func (EndpointMember) serviceMemberNode() {}

// ServiceInnerDecl is a declaration nested inside a service body.
type ServiceInnerDecl struct {
	Decl Decl
}

func (ServiceInnerDecl) serviceMemberNode() {}

// Endpoint is a single 'id(argument, ...) (-> Channel)? (as "alias")?;' member.
type Endpoint struct {
	ID        Located[string]
	Alias     *string
	Arguments []EndpointArgument
	Response  *Located[Channel]
}

// EndpointArgument is one named, channel-typed argument to an endpoint.
type EndpointArgument struct {
	Ident   Located[string]
	Channel Located[Channel]
}

// Channel is either a single value (Unary) or a stream of values
// (Streaming).
type Channel interface {
	channelNode()
}

// Unary is a non-streaming channel: a single value of Ty.
type Unary struct {
	Ty Located[Type]
}

func (Unary) channelNode() {}

// Streaming is a 'stream Type' channel.
type Streaming struct {
	Ty Located[Type]
}

func (Streaming) channelNode() {}
