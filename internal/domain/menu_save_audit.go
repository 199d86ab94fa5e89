package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuSaveAudit struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RestaurantID   string             `bson:"restaurant_id" json:"restaurant_id"`
	SessionID      string             `bson:"session_id" json:"session_id"`
	CategoryCounts map[Language]int   `bson:"category_counts" json:"category_counts"`
	ItemCounts     map[Language]int   `bson:"item_counts" json:"item_counts"`
	Timestamp      time.Time          `bson:"timestamp" json:"timestamp"`
}
