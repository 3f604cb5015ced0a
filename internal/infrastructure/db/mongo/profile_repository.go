package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devconnector/devconnector-api/internal/core/domain"
	"github.com/devconnector/devconnector-api/internal/core/ports"
)

const collectionProfiles = "profiles"

// ProfileRepository stores profiles and joins the owner's name and avatar from
// the users collection on read. Every write bumps a version counter; Update
// replaces the document only at the version it read.
type ProfileRepository struct {
	col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{col: db.Collection(collectionProfiles)}
}

type socialDoc struct {
	YouTube   string `bson:"youtube,omitempty"`
	Twitter   string `bson:"twitter,omitempty"`
	Facebook  string `bson:"facebook,omitempty"`
	LinkedIn  string `bson:"linkedin,omitempty"`
	Instagram string `bson:"instagram,omitempty"`
}

type experienceDoc struct {
	ID          string     `bson:"_id"`
	Title       string     `bson:"title"`
	Company     string     `bson:"company"`
	Location    string     `bson:"location,omitempty"`
	From        time.Time  `bson:"from"`
	To          *time.Time `bson:"to,omitempty"`
	Current     bool       `bson:"current"`
	Description string     `bson:"description,omitempty"`
}

type educationDoc struct {
	ID           string     `bson:"_id"`
	School       string     `bson:"school"`
	Degree       string     `bson:"degree"`
	FieldOfStudy string     `bson:"fieldofstudy"`
	From         time.Time  `bson:"from"`
	To           *time.Time `bson:"to,omitempty"`
	Current      bool       `bson:"current"`
	Description  string     `bson:"description,omitempty"`
}

type ownerDoc struct {
	ID     primitive.ObjectID `bson:"_id"`
	Name   string             `bson:"name"`
	Avatar string             `bson:"avatar"`
}

type profileDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	User           primitive.ObjectID `bson:"user"`
	Company        string             `bson:"company,omitempty"`
	Website        string             `bson:"website,omitempty"`
	Location       string             `bson:"location,omitempty"`
	Bio            string             `bson:"bio,omitempty"`
	Status         string             `bson:"status"`
	GitHubUsername string             `bson:"githubusername,omitempty"`
	Skills         []string           `bson:"skills"`
	Social         socialDoc          `bson:"social"`
	Experience     []experienceDoc    `bson:"experience"`
	Education      []educationDoc     `bson:"education"`
	Date           time.Time          `bson:"date"`
	Version        int64              `bson:"version"`

	// Populated by the $lookup stage only; never written.
	Owner []ownerDoc `bson:"owner,omitempty"`
}

func (d profileDoc) toDomain() *domain.Profile {
	p := &domain.Profile{
		ID:             d.ID.Hex(),
		User:           domain.UserRef{ID: d.User.Hex()},
		Company:        d.Company,
		Website:        d.Website,
		Location:       d.Location,
		Bio:            d.Bio,
		Status:         d.Status,
		GitHubUsername: d.GitHubUsername,
		Skills:         append([]string{}, d.Skills...),
		Social:         domain.Social(d.Social),
		Experience:     make([]domain.Experience, 0, len(d.Experience)),
		Education:      make([]domain.Education, 0, len(d.Education)),
		Date:           d.Date,
		Version:        d.Version,
	}
	if len(d.Owner) > 0 {
		p.User.Name = d.Owner[0].Name
		p.User.Avatar = d.Owner[0].Avatar
	}
	for _, e := range d.Experience {
		p.Experience = append(p.Experience, domain.Experience(e))
	}
	for _, e := range d.Education {
		p.Education = append(p.Education, domain.Education(e))
	}
	return p
}

func toProfileDoc(p *domain.Profile) (profileDoc, error) {
	user, err := objectID(p.User.ID, domain.ErrUserNotFound)
	if err != nil {
		return profileDoc{}, err
	}

	doc := profileDoc{
		User:           user,
		Company:        p.Company,
		Website:        p.Website,
		Location:       p.Location,
		Bio:            p.Bio,
		Status:         p.Status,
		GitHubUsername: p.GitHubUsername,
		Skills:         append([]string{}, p.Skills...),
		Social:         socialDoc(p.Social),
		Experience:     make([]experienceDoc, 0, len(p.Experience)),
		Education:      make([]educationDoc, 0, len(p.Education)),
		Date:           p.Date,
		Version:        p.Version,
	}
	if p.ID != "" {
		if doc.ID, err = objectID(p.ID, domain.ErrProfileNotFound); err != nil {
			return profileDoc{}, err
		}
	}
	for _, e := range p.Experience {
		doc.Experience = append(doc.Experience, experienceDoc(e))
	}
	for _, e := range p.Education {
		doc.Education = append(doc.Education, educationDoc(e))
	}
	return doc, nil
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	doc, err := r.findByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]*domain.Profile, error) {
	docs, err := r.aggregate(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	profiles := make([]*domain.Profile, 0, len(docs))
	for _, d := range docs {
		profiles = append(profiles, d.toDomain())
	}
	return profiles, nil
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	doc, err := toProfileDoc(p)
	if err != nil {
		return nil, err
	}
	doc.ID = primitive.NewObjectID()
	doc.Version = 1

	insertCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(insertCtx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrProfileExists
		}
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	return r.FindByUserID(ctx, p.User.ID)
}

// Update loads the profile, applies mutate and replaces the document only if
// its version is unchanged, retrying from a fresh read otherwise.
func (r *ProfileRepository) Update(ctx context.Context, userID string, mutate ports.ProfileMutation) (*domain.Profile, error) {
	var result *domain.Profile

	err := retryVersioned(ctx, func(ctx context.Context) (bool, error) {
		current, err := r.findByUser(ctx, userID)
		if err != nil {
			return false, err
		}

		profile := current.toDomain()
		if err := mutate(profile); err != nil {
			return false, err
		}

		next, err := toProfileDoc(profile)
		if err != nil {
			return false, err
		}
		next.ID = current.ID
		next.User = current.User
		next.Version = current.Version + 1

		replaceCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
		defer cancel()

		res, err := r.col.ReplaceOne(replaceCtx, versionFilter(current.ID, current.Version), next)
		if err != nil {
			return false, fmt.Errorf("replace profile: %w", err)
		}
		if res.MatchedCount == 0 {
			return false, nil
		}

		profile.Version = next.Version
		result = profile
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *ProfileRepository) AddExperience(ctx context.Context, userID string, e domain.Experience) (*domain.Profile, error) {
	return r.apply(ctx, userID,
		bson.M{},
		bson.M{"$push": bson.M{"experience": pushHead(experienceDoc(e))}},
		func(*domain.Profile) error { return nil },
	)
}

func (r *ProfileRepository) RemoveExperience(ctx context.Context, userID, experienceID string) (*domain.Profile, error) {
	return r.apply(ctx, userID,
		bson.M{"experience._id": experienceID},
		bson.M{"$pull": bson.M{"experience": bson.M{"_id": experienceID}}},
		func(p *domain.Profile) error { return p.RemoveExperience(experienceID) },
	)
}

func (r *ProfileRepository) AddEducation(ctx context.Context, userID string, e domain.Education) (*domain.Profile, error) {
	return r.apply(ctx, userID,
		bson.M{},
		bson.M{"$push": bson.M{"education": pushHead(educationDoc(e))}},
		func(*domain.Profile) error { return nil },
	)
}

func (r *ProfileRepository) RemoveEducation(ctx context.Context, userID, educationID string) (*domain.Profile, error) {
	return r.apply(ctx, userID,
		bson.M{"education._id": educationID},
		bson.M{"$pull": bson.M{"education": bson.M{"_id": educationID}}},
		func(p *domain.Profile) error { return p.RemoveEducation(educationID) },
	)
}

// apply runs one conditional update on the user's profile and returns the
// profile as stored afterwards. See PostRepository.apply for explain.
func (r *ProfileRepository) apply(
	ctx context.Context,
	userID string,
	cond, update bson.M,
	explain func(p *domain.Profile) error,
) (*domain.Profile, error) {
	oid, err := objectID(userID, domain.ErrProfileNotFound)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"user": oid}
	for k, v := range cond {
		filter[k] = v
	}
	update["$inc"] = bson.M{"version": 1}

	err = retryVersioned(ctx, func(ctx context.Context) (bool, error) {
		updateCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
		defer cancel()

		res, err := r.col.UpdateOne(updateCtx, filter, update)
		if err != nil {
			return false, fmt.Errorf("update profile: %w", err)
		}
		if res.MatchedCount > 0 {
			return true, nil
		}

		current, err := r.findByUser(ctx, userID)
		if err != nil {
			return false, err
		}
		return false, explain(current.toDomain())
	})
	if err != nil {
		return nil, err
	}
	return r.FindByUserID(ctx, userID)
}

func (r *ProfileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	oid, err := objectID(userID, domain.ErrProfileNotFound)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"user": oid})
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

// EnsureIndexes enforces one profile per user.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *ProfileRepository) findByUser(ctx context.Context, userID string) (profileDoc, error) {
	oid, err := objectID(userID, domain.ErrProfileNotFound)
	if err != nil {
		return profileDoc{}, err
	}

	docs, err := r.aggregate(ctx, bson.M{"user": oid})
	if err != nil {
		return profileDoc{}, err
	}
	if len(docs) == 0 {
		return profileDoc{}, domain.ErrProfileNotFound
	}
	return docs[0], nil
}

func (r *ProfileRepository) aggregate(ctx context.Context, match bson.M) ([]profileDoc, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collectionUsers},
			{Key: "localField", Value: "user"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "owner.password", Value: 0},
			{Key: "owner.email", Value: 0},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate profiles: %w", err)
	}
	defer cur.Close(ctx)

	var docs []profileDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	return docs, nil
}

// versionFilter matches a document at the given version. Documents written
// before versioning carry no field and count as version 0.
func versionFilter(id primitive.ObjectID, version int64) bson.M {
	if version == 0 {
		return bson.M{"_id": id, "version": bson.M{"$in": bson.A{0, nil}}}
	}
	return bson.M{"_id": id, "version": version}
}
