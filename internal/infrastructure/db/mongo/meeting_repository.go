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
	"github.com/smartscheduler/meeting-system/internal/core/ports"
)

const meetingsCollection = "meetings"

type MeetingRepository struct {
	coll *mongo.Collection
}

func NewMeetingRepository(db *mongo.Database) *MeetingRepository {
	return &MeetingRepository{coll: db.Collection(meetingsCollection)}
}

type mongoMeeting struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Date         time.Time          `bson:"date"`
	Participants []string           `bson:"participants"`
	Description  string             `bson:"description,omitempty"`
	OwnerID      string             `bson:"owner_id"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (mm *mongoMeeting) toDomain() *domain.Meeting {
	participants := mm.Participants
	if participants == nil {
		participants = []string{}
	}
	return &domain.Meeting{
		ID:           mm.ID.Hex(),
		Title:        mm.Title,
		Date:         mm.Date,
		Participants: participants,
		Description:  mm.Description,
		OwnerID:      mm.OwnerID,
		CreatedAt:    mm.CreatedAt,
		UpdatedAt:    mm.UpdatedAt,
	}
}

// ownerScopedFilter builds the filter used by every by-id operation: both the
// id and the owner must match, so foreign meetings read as missing. An id
// that is not a valid ObjectID hex also reads as missing.
func ownerScopedFilter(id, ownerID string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMeetingNotFound
	}
	return bson.M{"_id": oid, "owner_id": ownerID}, nil
}

func (r *MeetingRepository) Create(ctx context.Context, m *domain.Meeting) (*domain.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoMeeting{
		Title:        m.Title,
		Date:         m.Date,
		Participants: m.Participants,
		Description:  m.Description,
		OwnerID:      m.OwnerID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert meeting: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *MeetingRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	defer cur.Close(ctx)

	meetings := make([]*domain.Meeting, 0)
	for cur.Next(ctx) {
		var mm mongoMeeting
		if err := cur.Decode(&mm); err != nil {
			return nil, fmt.Errorf("decode meeting: %w", err)
		}
		meetings = append(meetings, mm.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	return meetings, nil
}

func (r *MeetingRepository) FindByID(ctx context.Context, id, ownerID string) (*domain.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownerScopedFilter(id, ownerID)
	if err != nil {
		return nil, err
	}

	var mm mongoMeeting
	if err := r.coll.FindOne(ctx, filter).Decode(&mm); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("find meeting: %w", err)
	}
	return mm.toDomain(), nil
}

func (r *MeetingRepository) Update(ctx context.Context, id, ownerID string, update ports.MeetingUpdate) (*domain.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownerScopedFilter(id, ownerID)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Date != nil {
		set["date"] = *update.Date
	}
	if update.Participants != nil {
		set["participants"] = *update.Participants
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mm mongoMeeting
	if err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&mm); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("update meeting: %w", err)
	}
	return mm.toDomain(), nil
}

func (r *MeetingRepository) Delete(ctx context.Context, id, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := ownerScopedFilter(id, ownerID)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete meeting: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMeetingNotFound
	}
	return nil
}

// EnsureIndexes creates the owner/date index used by the list query.
func (r *MeetingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "date", Value: 1}},
	})
	return err
}
