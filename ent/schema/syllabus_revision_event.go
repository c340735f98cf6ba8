package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SyllabusRevisionEvent records an accepted in-session syllabus edit.
type SyllabusRevisionEvent struct {
	ent.Schema
}

func (SyllabusRevisionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SyllabusRevisionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("UUID of the session the edit happened in"),
		field.Text("instruction").
			Comment("Natural-language edit instruction from the admin"),
		field.String("document_ref").
			Default("").
			Comment("Source document the revision was grounded in, if any"),
		field.Int("revision").
			Comment("Revision number after the edit (1 = initial syllabus)"),
		field.Int("stage_count").
			Default(0).
			Comment("Number of stages after the edit"),
	}
}

func (SyllabusRevisionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
