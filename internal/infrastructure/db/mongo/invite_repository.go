package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/smartscheduler/meeting-system/internal/core/domain"
)

const invitesCollection = "invite_links"

type InviteRepository struct {
	coll *mongo.Collection
}

func NewInviteRepository(db *mongo.Database) *InviteRepository {
	return &InviteRepository{coll: db.Collection(invitesCollection)}
}

type mongoInviteLink struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID   string             `bson:"owner_id"`
	Token     string             `bson:"token"`
	Scope     string             `bson:"scope"`
	ExpiresAt *time.Time         `bson:"expires_at,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (ml *mongoInviteLink) toDomain() *domain.InviteLink {
	return &domain.InviteLink{
		ID:        ml.ID.Hex(),
		OwnerID:   ml.OwnerID,
		Token:     ml.Token,
		Scope:     domain.InviteScope(ml.Scope),
		ExpiresAt: ml.ExpiresAt,
		CreatedAt: ml.CreatedAt,
	}
}

func (r *InviteRepository) Create(ctx context.Context, link *domain.InviteLink) (*domain.InviteLink, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoInviteLink{
		OwnerID:   link.OwnerID,
		Token:     link.Token,
		Scope:     string(link.Scope),
		ExpiresAt: link.ExpiresAt,
		CreatedAt: link.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateToken
		}
		return nil, fmt.Errorf("insert invite link: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *InviteRepository) FindByToken(ctx context.Context, token string) (*domain.InviteLink, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ml mongoInviteLink
	if err := r.coll.FindOne(ctx, bson.M{"token": token}).Decode(&ml); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInviteNotFound
		}
		return nil, fmt.Errorf("find invite link: %w", err)
	}
	return ml.toDomain(), nil
}

// EnsureIndexes creates the unique token index; a violation surfaces as
// domain.ErrDuplicateToken and triggers a retry with a fresh token.
func (r *InviteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "token", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
