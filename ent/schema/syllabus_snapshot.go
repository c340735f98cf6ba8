package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SyllabusSnapshot stores the full syllabus document at a revision,
// so a syllabus can be inspected or reused after the session ends.
type SyllabusSnapshot struct {
	ent.Schema
}

func (SyllabusSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Global sequence number at capture time"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("UTC time of capture"),
		field.String("session_id").
			Default("").
			Comment("Session the snapshot was taken in, if any"),
		field.String("syllabus_name").
			Comment("syllabus_name of the stored document"),
		field.Int("revision").
			Default(1).
			Comment("Revision number within the session"),
		field.JSON("data", map[string]any{}).
			Comment("Complete syllabus document in wire format"),
	}
}

func (SyllabusSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sequence"),
		index.Fields("timestamp"),
		index.Fields("session_id"),
	}
}
