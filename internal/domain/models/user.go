// internal/domain/models/user.go
package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UsersCollection is the MongoDB collection holding user accounts.
const UsersCollection = "users"

// User is an account record.
//
// Password holds a bcrypt hash and is never serialized to clients; use
// UserDTO for anything that leaves the process. CreatedAt and UpdatedAt
// are epoch milliseconds.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	CreatedAt int64              `bson:"created_at" json:"created_at"`
	UpdatedAt int64              `bson:"updated_at" json:"updated_at"`
}

// UserIndexes declares the indexes for the users collection.
// Username and email are each unique across all users.
var UserIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_users_username"),
	},
	{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_users_email"),
	},
	// Default list order (newest first).
	{
		Keys:    bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
		Options: options.Index().SetName("idx_users_createdat_id"),
	},
}

// UserDTO is the client-facing shape of a User.
type UserDTO struct {
	ID        string `json:"_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

// DTO maps the stored record to its client-facing shape.
func (u User) DTO() UserDTO {
	return UserDTO{
		ID:        u.ID.Hex(),
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
