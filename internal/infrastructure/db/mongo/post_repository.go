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

	"github.com/devconnector/devconnector-api/internal/core/domain"
)

const collectionPosts = "posts"

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection(collectionPosts)}
}

type likeDoc struct {
	User primitive.ObjectID `bson:"user"`
}

type commentDoc struct {
	ID     string             `bson:"_id"`
	User   primitive.ObjectID `bson:"user"`
	Text   string             `bson:"text"`
	Name   string             `bson:"name"`
	Avatar string             `bson:"avatar"`
	Date   time.Time          `bson:"date"`
}

type postDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	User     primitive.ObjectID `bson:"user"`
	Text     string             `bson:"text"`
	Name     string             `bson:"name"`
	Avatar   string             `bson:"avatar"`
	Likes    []likeDoc          `bson:"likes"`
	Comments []commentDoc       `bson:"comments"`
	Date     time.Time          `bson:"date"`
	Version  int64              `bson:"version"`
}

func (d postDoc) toDomain() *domain.Post {
	p := &domain.Post{
		ID:       d.ID.Hex(),
		User:     d.User.Hex(),
		Text:     d.Text,
		Name:     d.Name,
		Avatar:   d.Avatar,
		Likes:    make([]domain.Like, 0, len(d.Likes)),
		Comments: make([]domain.Comment, 0, len(d.Comments)),
		Date:     d.Date,
		Version:  d.Version,
	}
	for _, l := range d.Likes {
		p.Likes = append(p.Likes, domain.Like{User: l.User.Hex()})
	}
	for _, c := range d.Comments {
		p.Comments = append(p.Comments, domain.Comment{
			ID:     c.ID,
			User:   c.User.Hex(),
			Text:   c.Text,
			Name:   c.Name,
			Avatar: c.Avatar,
			Date:   c.Date,
		})
	}
	return p
}

func toPostDoc(p *domain.Post) (postDoc, error) {
	user, err := objectID(p.User, domain.ErrUserNotFound)
	if err != nil {
		return postDoc{}, err
	}

	doc := postDoc{
		User:     user,
		Text:     p.Text,
		Name:     p.Name,
		Avatar:   p.Avatar,
		Likes:    make([]likeDoc, 0, len(p.Likes)),
		Comments: make([]commentDoc, 0, len(p.Comments)),
		Date:     p.Date,
		Version:  p.Version,
	}
	for _, l := range p.Likes {
		liker, err := objectID(l.User, domain.ErrUserNotFound)
		if err != nil {
			return postDoc{}, err
		}
		doc.Likes = append(doc.Likes, likeDoc{User: liker})
	}
	for _, c := range p.Comments {
		author, err := objectID(c.User, domain.ErrUserNotFound)
		if err != nil {
			return postDoc{}, err
		}
		doc.Comments = append(doc.Comments, commentDoc{
			ID:     c.ID,
			User:   author,
			Text:   c.Text,
			Name:   c.Name,
			Avatar: c.Avatar,
			Date:   c.Date,
		})
	}
	return doc, nil
}

func (r *PostRepository) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	doc, err := toPostDoc(p)
	if err != nil {
		return nil, err
	}
	doc.ID = primitive.NewObjectID()
	doc.Version = 1

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	doc, err := r.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

// List returns every post, newest first.
func (r *PostRepository) List(ctx context.Context) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	defer cur.Close(ctx)

	var docs []postDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	posts := make([]*domain.Post, 0, len(docs))
	for _, d := range docs {
		posts = append(posts, d.toDomain())
	}
	return posts, nil
}

// AddLike pushes userID at the head of the likes unless it is already there.
func (r *PostRepository) AddLike(ctx context.Context, postID, userID string) (*domain.Post, error) {
	uid, err := objectID(userID, domain.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	return r.apply(ctx, postID,
		bson.M{"likes.user": bson.M{"$ne": uid}},
		bson.M{"$push": bson.M{"likes": pushHead(likeDoc{User: uid})}},
		func(p *domain.Post) error { return p.Like(userID) },
	)
}

func (r *PostRepository) RemoveLike(ctx context.Context, postID, userID string) (*domain.Post, error) {
	uid, err := objectID(userID, domain.ErrNotLiked)
	if err != nil {
		return nil, err
	}

	return r.apply(ctx, postID,
		bson.M{"likes.user": uid},
		bson.M{"$pull": bson.M{"likes": bson.M{"user": uid}}},
		func(p *domain.Post) error { return p.Unlike(userID) },
	)
}

func (r *PostRepository) AddComment(ctx context.Context, postID string, c domain.Comment) (*domain.Post, error) {
	author, err := objectID(c.User, domain.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	doc := commentDoc{
		ID:     c.ID,
		User:   author,
		Text:   c.Text,
		Name:   c.Name,
		Avatar: c.Avatar,
		Date:   c.Date,
	}
	return r.apply(ctx, postID,
		bson.M{},
		bson.M{"$push": bson.M{"comments": pushHead(doc)}},
		func(*domain.Post) error { return nil },
	)
}

// RemoveComment pulls the comment only when requesterID wrote it.
func (r *PostRepository) RemoveComment(ctx context.Context, postID, commentID, requesterID string) (*domain.Post, error) {
	// A malformed requester matches no author and falls through to the
	// ownership check below.
	requester, err := primitive.ObjectIDFromHex(requesterID)
	if err != nil {
		requester = primitive.NilObjectID
	}

	return r.apply(ctx, postID,
		bson.M{"comments": bson.M{"$elemMatch": bson.M{"_id": commentID, "user": requester}}},
		bson.M{"$pull": bson.M{"comments": bson.M{"_id": commentID}}},
		func(p *domain.Post) error { return p.RemoveComment(commentID, requesterID) },
	)
}

// apply runs one conditional update on the post and returns the result. When
// the condition does not match, the stored post is handed to explain, which
// returns the domain error for that state. A nil from explain means the post
// changed in between, so the update is tried again.
func (r *PostRepository) apply(
	ctx context.Context,
	postID string,
	cond, update bson.M,
	explain func(p *domain.Post) error,
) (*domain.Post, error) {
	oid, err := objectID(postID, domain.ErrPostNotFound)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"_id": oid}
	for k, v := range cond {
		filter[k] = v
	}
	update["$inc"] = bson.M{"version": 1}

	var result *domain.Post
	err = retryVersioned(ctx, func(ctx context.Context) (bool, error) {
		updateCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
		defer cancel()

		var doc postDoc
		err := r.col.FindOneAndUpdate(updateCtx, filter, update,
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&doc)
		if err == nil {
			result = doc.toDomain()
			return true, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return false, fmt.Errorf("update post: %w", err)
		}

		current, err := r.findByID(ctx, postID)
		if err != nil {
			return false, err
		}
		return false, explain(current.toDomain())
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id, domain.ErrPostNotFound)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// DeleteByUser removes every post written by userID and reports how many.
func (r *PostRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"user": oid})
	if err != nil {
		return 0, fmt.Errorf("delete posts: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the feed ordering and author indexes.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "user", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// pushHead is the $push modifier that prepends v to an array.
func pushHead(v any) bson.M {
	return bson.M{"$each": bson.A{v}, "$position": 0}
}

func (r *PostRepository) findByID(ctx context.Context, id string) (postDoc, error) {
	oid, err := objectID(id, domain.ErrPostNotFound)
	if err != nil {
		return postDoc{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc postDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return postDoc{}, domain.ErrPostNotFound
		}
		return postDoc{}, fmt.Errorf("find post: %w", err)
	}
	return doc, nil
}
