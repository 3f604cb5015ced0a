package domain

import "time"

// Like records that a user liked a post.
type Like struct {
	User string `json:"user"`
}

// Comment is a reply on a post. Name and Avatar are a snapshot of the author
// taken when the comment was written.
type Comment struct {
	ID     string    `json:"_id"`
	User   string    `json:"user"`
	Text   string    `json:"text"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

// Post is the aggregate root of the feed. Likes and Comments are ordered most
// recent first; a user appears at most once in Likes.
type Post struct {
	ID       string    `json:"_id"`
	User     string    `json:"user"`
	Text     string    `json:"text"`
	Name     string    `json:"name"`
	Avatar   string    `json:"avatar"`
	Likes    []Like    `json:"likes"`
	Comments []Comment `json:"comments"`
	Date     time.Time `json:"date"`
	Version  int64     `json:"-"`
}

// LikedBy reports whether userID is in the likes list.
func (p *Post) LikedBy(userID string) bool {
	for _, l := range p.Likes {
		if l.User == userID {
			return true
		}
	}
	return false
}

// Like adds userID at the head of the likes list.
func (p *Post) Like(userID string) error {
	if p.LikedBy(userID) {
		return ErrAlreadyLiked
	}
	p.Likes = append([]Like{{User: userID}}, p.Likes...)
	return nil
}

// Unlike removes userID from the likes list.
func (p *Post) Unlike(userID string) error {
	for i, l := range p.Likes {
		if l.User == userID {
			p.Likes = append(p.Likes[:i:i], p.Likes[i+1:]...)
			return nil
		}
	}
	return ErrNotLiked
}

// AddComment inserts c at the head of the comments list.
func (p *Post) AddComment(c Comment) {
	p.Comments = append([]Comment{c}, p.Comments...)
}

// RemoveComment deletes the comment with commentID. Only its author may do so.
func (p *Post) RemoveComment(commentID, requesterID string) error {
	for i, c := range p.Comments {
		if c.ID != commentID {
			continue
		}
		if c.User != requesterID {
			return ErrNotAuthorized
		}
		p.Comments = append(p.Comments[:i:i], p.Comments[i+1:]...)
		return nil
	}
	return ErrCommentNotFound
}

// AuthorizeDelete checks that requesterID wrote the post.
func (p *Post) AuthorizeDelete(requesterID string) error {
	if p.User != requesterID {
		return ErrNotAuthorized
	}
	return nil
}
