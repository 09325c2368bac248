package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/memberhub/member-api/internal/core/domain"
	"github.com/memberhub/member-api/internal/core/ports"
)

const (
	collectionMembers  = "members"
	collectionCounters = "counters"
	memberIDCounter    = "member_id"
)

type MemberRepository struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewMemberRepository(db *mongo.Database) *MemberRepository {
	return &MemberRepository{
		col:      db.Collection(collectionMembers),
		counters: db.Collection(collectionCounters),
	}
}

type memberDoc struct {
	ID           int64  `bson:"_id"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password_hash"`
	Nickname     string `bson:"nickname"`
	CreatedAt    int64  `bson:"created_at"`
	UpdatedAt    int64  `bson:"updated_at"`
}

// Create assigns the next sequential id and inserts the member. A duplicate
// email surfaces as domain.ErrEmailExists through the unique index.
func (r *MemberRepository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	doc := memberDoc{
		ID:           id,
		Email:        member.Email,
		PasswordHash: member.PasswordHash,
		Nickname:     member.Nickname,
		CreatedAt:    member.CreatedAt.Unix(),
		UpdatedAt:    member.UpdatedAt.Unix(),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailExists
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}

	created := *member
	created.ID = id
	return &created, nil
}

func (r *MemberRepository) FindByEmail(ctx context.Context, email string) (*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc memberDoc
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member by email: %w", err)
	}
	return docToMember(doc), nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id int64) (*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc memberDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member by id: %w", err)
	}
	return docToMember(doc), nil
}

func (r *MemberRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count members by email: %w", err)
	}
	return n > 0, nil
}

func (r *MemberRepository) Update(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"nickname":      member.Nickname,
		"password_hash": member.PasswordHash,
		"updated_at":    member.UpdatedAt.Unix(),
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": member.ID}, update)
	if err != nil {
		return nil, fmt.Errorf("update member: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrMemberNotFound
	}
	return member, nil
}

// List returns one page of members ordered by id, plus the total count.
func (r *MemberRepository) List(ctx context.Context, filter ports.ListMembersFilter) ([]*domain.Member, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count members: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list members: %w", err)
	}
	defer cursor.Close(ctx)

	var members []*domain.Member
	for cursor.Next(ctx) {
		var doc memberDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode member: %w", err)
		}
		members = append(members, docToMember(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("list members: %w", err)
	}
	return members, total, nil
}

// EnsureIndexes creates the unique email index on the members collection.
func (r *MemberRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// nextID atomically increments and returns the member id sequence.
func (r *MemberRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}

	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": memberIDCounter},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next member id: %w", err)
	}
	return counter.Seq, nil
}

func docToMember(doc memberDoc) *domain.Member {
	return &domain.Member{
		ID:           doc.ID,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		Nickname:     doc.Nickname,
		CreatedAt:    unixToTime(doc.CreatedAt),
		UpdatedAt:    unixToTime(doc.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
