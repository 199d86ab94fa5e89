package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CredentialSlot is the fixed key of the single admin credential. A unique
// index on it makes creation succeed at most once.
const CredentialSlot = "admin"

// Credential is the single admin secret. Only the hash is ever stored.
type Credential struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Slot         string             `bson:"slot" json:"-"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
