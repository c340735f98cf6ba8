package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TurnEvent records one judged learner answer.
type TurnEvent struct {
	ent.Schema
}

func (TurnEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TurnEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("UUID of the session"),
		field.String("stage_id").
			Comment("Stage the answer was judged against"),
		field.Text("learner_answer").
			Comment("Text of the learner's submission"),
		field.String("outcome").
			Comment("Judge outcome: correct, partial, incorrect"),
		field.Text("rationale").
			Default("").
			Comment("Judge's feedback shown to the learner"),
	}
}

func (TurnEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("stage_id"),
		index.Fields("outcome"),
	}
}
