package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OpRecommendAlumnus = "recommend_alumnus"
	OpRecommendProject = "recommend_project"
)

// AdvisoryLog is one recommendation request. It never carries prompts, matches or model output.
type AdvisoryLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequestID string             `bson:"request_id" json:"request_id"`
	Operation string             `bson:"operation" json:"operation"` // recommend_alumnus|recommend_project
	Language  string             `bson:"language" json:"language"`  // id|en
	Outcome   string             `bson:"outcome" json:"outcome"`    // OK or an error code

	Collaborators int `bson:"collaborators" json:"collaborators"`
	Opportunities int `bson:"opportunities" json:"opportunities"`

	LatencyMS int64     `bson:"latency_ms" json:"latency_ms"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"` // for TTL index
}
