// Package store owns the canonical forum dataset: the single profile,
// posts, comments, microfeeds, chat messages, votes and the cart. It is the
// only component that mutates the persistence layer, and every mutation
// re-persists the whole dataset as one JSON blob under a fixed key.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"nightrituals/internal/logging"
	"nightrituals/internal/metrics"
	"nightrituals/internal/model"
)

// StorageKey is the fixed namespace the dataset is persisted under.
const StorageKey = "night-rituals-forum-data"

// ChatHistoryLimit caps the retained chat collection.
const ChatHistoryLimit = 100

// ErrMalformedData is returned by Import when the snapshot does not parse.
var ErrMalformedData = errors.New("malformed data")

// Persistence is the durable key-value contract the store writes through.
// storage.KV satisfies it; tests substitute an in-memory stub.
type Persistence interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
}

// Store serializes all dataset mutations, human and simulated alike, and
// keeps the aggregate invariants (vote scores, comment counts, chat cap)
// true on every write.
type Store struct {
	mu   sync.Mutex
	kv   Persistence
	data model.AppData
}

// New loads the persisted dataset through kv. A read or parse failure is
// logged and the store starts from an empty dataset; the session keeps
// working even if durability is gone.
func New(kv Persistence) *Store {
	s := &Store{kv: kv, data: model.DefaultData()}
	raw, ok, err := kv.Get(context.Background(), StorageKey)
	if err != nil {
		logging.Error("store_load_error", map[string]any{"error": err.Error()})
		return s
	}
	if !ok {
		return s
	}
	// Unmarshal over the defaults so keys missing from older snapshots keep
	// their empty values instead of failing the load.
	data := model.DefaultData()
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		logging.Error("store_parse_error", map[string]any{"error": err.Error()})
		return s
	}
	s.data = data
	return s
}

// save persists the whole dataset. Write failures are logged and counted
// but never surfaced; the in-memory state stays authoritative for the
// session. Callers must hold s.mu.
func (s *Store) save() {
	start := time.Now()
	b, err := json.Marshal(s.data)
	if err != nil {
		metrics.StoreSaveErrors.Inc()
		logging.Error("store_marshal_error", map[string]any{"error": err.Error()})
		return
	}
	if err := s.kv.Put(context.Background(), StorageKey, string(b)); err != nil {
		metrics.StoreSaveErrors.Inc()
		logging.Error("store_save_error", map[string]any{"error": err.Error()})
		return
	}
	metrics.StoreSaves.Inc()
	metrics.ObserveSaveDuration(start)
}

// Profile returns the current user, or false if none has been created.
func (s *Store) Profile() (model.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.User == nil {
		return model.Profile{}, false
	}
	return *s.data.User, true
}

// SetProfile replaces the singleton profile. No history is kept.
func (s *Store) SetProfile(p model.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.User = &p
	s.save()
}

// AddPost prepends a post and persists.
func (s *Store) AddPost(p model.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Posts = append([]model.Post{p}, s.data.Posts...)
	s.save()
}

// Posts returns all posts, optionally filtered to one category, sorted
// newest-first by creation timestamp. Posts with equal timestamps keep
// their relative insertion order.
func (s *Store) Posts(category model.Category) []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Post, 0, len(s.data.Posts))
	for _, p := range s.data.Posts {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Post looks up a post by id.
func (s *Store) Post(id string) (model.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.data.Posts {
		if p.ID == id {
			return p, true
		}
	}
	return model.Post{}, false
}

// AddComment appends a comment and bumps the parent post's comment count.
// The append is unconditional: a comment whose post does not exist is still
// stored, it just updates no count.
func (s *Store) AddComment(c model.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Comments = append(s.data.Comments, c)
	for i := range s.data.Posts {
		if s.data.Posts[i].ID == c.PostID {
			s.data.Posts[i].CommentCount++
			break
		}
	}
	s.save()
}

// Comments returns the comments for a post, newest first.
func (s *Store) Comments(postID string) []model.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Comment, 0)
	for _, c := range s.data.Comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// AddMicroFeed prepends a microfeed entry and persists.
func (s *Store) AddMicroFeed(m model.MicroFeed) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.MicroFeeds = append([]model.MicroFeed{m}, s.data.MicroFeeds...)
	s.save()
}

// MicroFeeds returns all microfeed entries, newest first.
func (s *Store) MicroFeeds() []model.MicroFeed {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.MicroFeed, len(s.data.MicroFeeds))
	copy(out, s.data.MicroFeeds)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// AddChatMessage appends a chat message, keeping chat in chronological
// insertion order, then drops the oldest entries beyond ChatHistoryLimit.
func (s *Store) AddChatMessage(m model.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.ChatMessages = append(s.data.ChatMessages, m)
	if n := len(s.data.ChatMessages); n > ChatHistoryLimit {
		s.data.ChatMessages = append([]model.ChatMessage(nil), s.data.ChatMessages[n-ChatHistoryLimit:]...)
	}
	s.save()
}

// ChatMessages returns the retained chat history in insertion order.
func (s *Store) ChatMessages() []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ChatMessage, len(s.data.ChatMessages))
	copy(out, s.data.ChatMessages)
	return out
}

// AddVote upserts a vote by (voter, target): any previous vote from the
// same user on the same target is replaced, then the target's score is
// recomputed from scratch over all its votes.
func (s *Store) AddVote(v model.Vote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeVoteLocked(v.UserID, v.TargetID)
	s.data.Votes = append(s.data.Votes, v)
	s.recomputeScore(v.TargetKind, v.TargetID)
	s.save()
}

// RemoveVote deletes the matching vote if present and recomputes the
// target's score. Removing an absent vote is a no-op apart from the
// recompute.
func (s *Store) RemoveVote(userID, targetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeVoteLocked(userID, targetID)
	s.recomputeScore("", targetID)
	s.save()
}

// UserVote returns the vote a user has cast on a target, if any.
func (s *Store) UserVote(userID, targetID string) (model.Vote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.data.Votes {
		if v.UserID == userID && v.TargetID == targetID {
			return v, true
		}
	}
	return model.Vote{}, false
}

func (s *Store) removeVoteLocked(userID, targetID string) {
	kept := s.data.Votes[:0]
	for _, v := range s.data.Votes {
		if v.UserID == userID && v.TargetID == targetID {
			continue
		}
		kept = append(kept, v)
	}
	s.data.Votes = kept
}

// recomputeScore sets the target's score to upvotes minus downvotes over
// all votes currently referencing it. An empty kind (older snapshots,
// RemoveVote) probes posts first, then comments. An unresolved target is a
// tolerated dangling reference, not an error.
func (s *Store) recomputeScore(kind model.TargetKind, targetID string) {
	score := 0
	for _, v := range s.data.Votes {
		if v.TargetID != targetID {
			continue
		}
		if v.Kind == model.Upvote {
			score++
		} else {
			score--
		}
	}
	if kind == model.TargetPost || kind == "" {
		for i := range s.data.Posts {
			if s.data.Posts[i].ID == targetID {
				s.data.Posts[i].Votes = score
				return
			}
		}
	}
	if kind == model.TargetComment || kind == "" {
		for i := range s.data.Comments {
			if s.data.Comments[i].ID == targetID {
				s.data.Comments[i].Votes = score
				return
			}
		}
	}
}

// AddToCart merges by item id: an item already in the cart has its
// quantity increased, a new item is appended.
func (s *Store) AddToCart(item model.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Cart {
		if s.data.Cart[i].ItemID == item.ItemID {
			s.data.Cart[i].Quantity += item.Quantity
			s.save()
			return
		}
	}
	s.data.Cart = append(s.data.Cart, item)
	s.save()
}

// Cart returns the cart contents.
func (s *Store) Cart() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CartItem, len(s.data.Cart))
	copy(out, s.data.Cart)
	return out
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Cart = []model.CartItem{}
	s.save()
}

// Export serializes the whole dataset as pretty-printed JSON, suitable for
// download as a file.
func (s *Store) Export() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		logging.Error("store_export_error", map[string]any{"error": err.Error()})
		return ""
	}
	return string(b)
}

// Import parses a snapshot, merges it over an empty dataset and replaces
// the store's contents wholesale. Unlike persistence faults this failure
// is surfaced: import is a deliberate user action that deserves feedback.
func (s *Store) Import(text string) error {
	data := model.DefaultData()
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	s.save()
	return nil
}

// Snapshot returns a shallow copy of the dataset for read-only consumers
// such as analytics.
func (s *Store) Snapshot() model.AppData {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.data
	out.Posts = append([]model.Post(nil), s.data.Posts...)
	out.Comments = append([]model.Comment(nil), s.data.Comments...)
	out.MicroFeeds = append([]model.MicroFeed(nil), s.data.MicroFeeds...)
	out.ChatMessages = append([]model.ChatMessage(nil), s.data.ChatMessages...)
	out.Votes = append([]model.Vote(nil), s.data.Votes...)
	out.Cart = append([]model.CartItem(nil), s.data.Cart...)
	if s.data.User != nil {
		u := *s.data.User
		out.User = &u
	}
	return out
}
