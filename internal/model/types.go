package model

import "time"

// Category is the closed set of forum categories.
type Category string

const (
	CategoryDreams       Category = "dreams"
	CategoryNightmares   Category = "nightmares"
	CategoryOccult       Category = "occult"
	CategoryUrbanLegends Category = "urban-legends"
	CategoryDarkPoetry   Category = "dark-poetry"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryDreams,
		CategoryNightmares,
		CategoryOccult,
		CategoryUrbanLegends,
		CategoryDarkPoetry,
	}
}

// ValidCategory reports whether c is a known category.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryDreams, CategoryNightmares, CategoryOccult, CategoryUrbanLegends, CategoryDarkPoetry:
		return true
	}
	return false
}

// Profile is the single real visitor's identity. Simulated personas share
// the same shape but live only in the simulator's roster.
type Profile struct {
	ID        string    `json:"id"`
	Nickname  string    `json:"nickname"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Post is a long-form forum post.
type Post struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Category     Category  `json:"category"`
	Tags         []string  `json:"tags"`
	Image        string    `json:"image,omitempty"`
	AuthorID     string    `json:"authorId"`
	Votes        int       `json:"votes"`
	CreatedAt    time.Time `json:"createdAt"`
	CommentCount int       `json:"commentCount"`
}

// Comment belongs to exactly one post.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	PostID    string    `json:"postId"`
	AuthorID  string    `json:"authorId"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"createdAt"`
}

// MicroFeed is a short-form thought, capped at 280 characters.
type MicroFeed struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ChatMessage is one line in the live chat. Only the most recent 100 are kept.
type ChatMessage struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// VoteKind is the direction of a vote.
type VoteKind string

const (
	Upvote   VoteKind = "upvote"
	Downvote VoteKind = "downvote"
)

// TargetKind tags what a vote applies to. Snapshots written before the tag
// existed carry an empty kind; the store falls back to probing posts then
// comments by id.
type TargetKind string

const (
	TargetPost    TargetKind = "post"
	TargetComment TargetKind = "comment"
)

// Vote records one user's vote on one target. At most one vote exists per
// (UserID, TargetID) pair.
type Vote struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	TargetKind TargetKind `json:"targetType,omitempty"`
	TargetID   string     `json:"targetId"`
	Kind       VoteKind   `json:"type"`
}

// CartItem references a catalog item with a quantity of at least 1.
type CartItem struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// AppData is the whole persisted dataset, serialized as one blob under a
// fixed storage key.
type AppData struct {
	User         *Profile      `json:"user"`
	Posts        []Post        `json:"posts"`
	Comments     []Comment     `json:"comments"`
	MicroFeeds   []MicroFeed   `json:"microFeeds"`
	ChatMessages []ChatMessage `json:"chatMessages"`
	Votes        []Vote        `json:"votes"`
	Cart         []CartItem    `json:"cart"`
}

// DefaultData returns an all-empty dataset. Loads merge the stored record
// over this so snapshots missing newer keys stay loadable.
func DefaultData() AppData {
	return AppData{
		Posts:        []Post{},
		Comments:     []Comment{},
		MicroFeeds:   []MicroFeed{},
		ChatMessages: []ChatMessage{},
		Votes:        []Vote{},
		Cart:         []CartItem{},
	}
}
