package model

// Actor is a cast member of a series. SortOrder is 0 for unordered and 1 to
// 3 for billing rank; ranks are not unique.
type Actor struct {
	ID        int  `json:"id"`
	Image     Text `json:"image"`
	Name      Text `json:"name"`
	Role      Text `json:"role"`
	SortOrder int  `json:"sort_order"`
}

func (a Actor) ImageURL() string {
	return a.Image.String()
}

func (a Actor) TitleText() string {
	return a.Name.String()
}

func (a Actor) DescText() string {
	return a.Role.String()
}

type ActorBuilder struct {
	a Actor
}

func NewActorBuilder() *ActorBuilder {
	return &ActorBuilder{a: Actor{ID: NotPresent, SortOrder: NotPresent}}
}

func (b *ActorBuilder) SetID(v int) *ActorBuilder {
	b.a.ID = v
	return b
}

func (b *ActorBuilder) SetImage(path string) *ActorBuilder {
	b.a.Image = ImageURL(path)
	return b
}

func (b *ActorBuilder) SetName(v string) *ActorBuilder {
	b.a.Name = NewText(v)
	return b
}

func (b *ActorBuilder) SetRole(v string) *ActorBuilder {
	b.a.Role = NewText(v)
	return b
}

func (b *ActorBuilder) SetSortOrder(v int) *ActorBuilder {
	b.a.SortOrder = v
	return b
}

func (b *ActorBuilder) Build() Actor {
	return b.a
}
