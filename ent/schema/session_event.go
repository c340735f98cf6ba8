package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent marks a session lifecycle transition.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("UUID of the session"),
		field.String("action").
			Comment("Lifecycle action: start, end"),
		field.String("syllabus_name").
			Default("").
			Comment("Name of the syllabus being taught"),
		field.Int("stage_count").
			Default(0).
			Comment("Number of stages at the time of the event"),
		field.Int("turn_count").
			Default(0).
			Comment("Turns accumulated at the time of the event"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
