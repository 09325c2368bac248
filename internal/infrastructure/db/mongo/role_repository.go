package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionRoles = "roles"

type RoleRepository struct {
	col *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{col: db.Collection(collectionRoles)}
}

type roleDoc struct {
	MemberID int64  `bson:"member_id"`
	Role     string `bson:"role"`
}

func (r *RoleRepository) Assign(ctx context.Context, memberID int64, role string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, roleDoc{MemberID: memberID, Role: role}); err != nil {
		return fmt.Errorf("assign role: %w", err)
	}
	return nil
}

func (r *RoleRepository) FindAllByMemberID(ctx context.Context, memberID int64) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"member_id": memberID})
	if err != nil {
		return nil, fmt.Errorf("find roles: %w", err)
	}
	defer cursor.Close(ctx)

	var roles []string
	for cursor.Next(ctx) {
		var doc roleDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode role: %w", err)
		}
		roles = append(roles, doc.Role)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("find roles: %w", err)
	}
	return roles, nil
}

// EnsureIndexes creates the member_id lookup index on the roles collection.
func (r *RoleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "member_id", Value: 1}},
	})
	return err
}
