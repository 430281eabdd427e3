package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"nightrituals/internal/model"
	"nightrituals/internal/storage"
)

// memKV is an in-memory persistence stub.
type memKV struct {
	m      map[string]string
	getErr error
	putErr error
}

func newMemKV() *memKV { return &memKV{m: make(map[string]string)} }

func (k *memKV) Get(ctx context.Context, key string) (string, bool, error) {
	if k.getErr != nil {
		return "", false, k.getErr
	}
	v, ok := k.m[key]
	return v, ok, nil
}

func (k *memKV) Put(ctx context.Context, key, value string) error {
	if k.putErr != nil {
		return k.putErr
	}
	k.m[key] = value
	return nil
}

func at(offset time.Duration) time.Time {
	return time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC).Add(offset)
}

func TestSeedSamplesIdempotent(t *testing.T) {
	s := New(newMemKV())
	if !s.SeedSamples() {
		t.Fatal("expected first seed to run")
	}
	posts := s.Posts("")
	if len(posts) != 3 {
		t.Fatalf("expected 3 sample posts, got %d", len(posts))
	}
	for _, id := range []string{"post-1", "post-2", "post-3"} {
		if _, ok := s.Post(id); !ok {
			t.Fatalf("expected sample %s", id)
		}
	}
	p, ok := s.Profile()
	if !ok || p.Nickname != "ShadowWalker" {
		t.Fatalf("expected ShadowWalker profile, got %+v ok=%v", p, ok)
	}
	if s.SeedSamples() {
		t.Fatal("expected second seed to be a no-op")
	}
	if got := len(s.Posts("")); got != 3 {
		t.Fatalf("expected 3 posts after repeat seed, got %d", got)
	}
}

func TestPostsSortedAndFiltered(t *testing.T) {
	s := New(newMemKV())
	s.AddPost(model.Post{ID: "a", Category: model.CategoryDreams, CreatedAt: at(-2 * time.Hour)})
	s.AddPost(model.Post{ID: "b", Category: model.CategoryOccult, CreatedAt: at(0)})
	s.AddPost(model.Post{ID: "c", Category: model.CategoryDreams, CreatedAt: at(-1 * time.Hour)})

	all := s.Posts("")
	if len(all) != 3 || all[0].ID != "b" || all[1].ID != "c" || all[2].ID != "a" {
		t.Fatalf("expected newest-first b,c,a, got %v", ids(all))
	}
	dreams := s.Posts(model.CategoryDreams)
	if len(dreams) != 2 || dreams[0].ID != "c" || dreams[1].ID != "a" {
		t.Fatalf("expected dreams c,a, got %v", ids(dreams))
	}
	if _, ok := s.Post("nope"); ok {
		t.Fatal("expected not found for unknown id")
	}
}

func TestPostsEqualTimestampsKeepInsertionOrder(t *testing.T) {
	s := New(newMemKV())
	ts := at(0)
	for i := 0; i < 5; i++ {
		s.AddPost(model.Post{ID: fmt.Sprintf("p%d", i), Category: model.CategoryDreams, CreatedAt: ts})
	}
	// AddPost prepends, so the internal order is p4..p0; equal timestamps
	// must not be reshuffled by the sort.
	got := ids(s.Posts(""))
	want := []string{"p4", "p3", "p2", "p1", "p0"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected stable order %v, got %v", want, got)
		}
	}
}

func TestCommentCountTracksComments(t *testing.T) {
	s := New(newMemKV())
	s.AddPost(model.Post{ID: "p1", Category: model.CategoryDreams, CreatedAt: at(0)})
	for i := 0; i < 3; i++ {
		s.AddComment(model.Comment{ID: fmt.Sprintf("c%d", i), PostID: "p1", CreatedAt: at(time.Duration(i) * time.Minute)})
	}
	p, _ := s.Post("p1")
	if p.CommentCount != 3 {
		t.Fatalf("expected commentCount 3, got %d", p.CommentCount)
	}
	if got := len(s.Comments("p1")); got != 3 {
		t.Fatalf("expected 3 comments, got %d", got)
	}
	// Comments come back newest first.
	cs := s.Comments("p1")
	if cs[0].ID != "c2" || cs[2].ID != "c0" {
		t.Fatalf("expected newest-first comments, got %s..%s", cs[0].ID, cs[2].ID)
	}
}

func TestDanglingCommentStoredWithoutCount(t *testing.T) {
	s := New(newMemKV())
	s.AddPost(model.Post{ID: "p1", Category: model.CategoryDreams, CreatedAt: at(0)})
	s.AddComment(model.Comment{ID: "c1", PostID: "ghost", CreatedAt: at(0)})
	if got := len(s.Comments("ghost")); got != 1 {
		t.Fatalf("expected dangling comment stored, got %d", got)
	}
	p, _ := s.Post("p1")
	if p.CommentCount != 0 {
		t.Fatalf("expected untouched commentCount, got %d", p.CommentCount)
	}
}

func TestVoteUpsertAndScore(t *testing.T) {
	s := New(newMemKV())
	s.AddPost(model.Post{ID: "p1", Category: model.CategoryDreams, CreatedAt: at(0)})

	s.AddVote(model.Vote{ID: "v1", UserID: "u1", TargetKind: model.TargetPost, TargetID: "p1", Kind: model.Upvote})
	p, _ := s.Post("p1")
	if p.Votes != 1 {
		t.Fatalf("expected score 1 after upvote, got %d", p.Votes)
	}

	// Same voter, same target: replace, never accumulate.
	s.AddVote(model.Vote{ID: "v2", UserID: "u1", TargetKind: model.TargetPost, TargetID: "p1", Kind: model.Downvote})
	v, ok := s.UserVote("u1", "p1")
	if !ok || v.Kind != model.Downvote {
		t.Fatalf("expected single downvote, got %+v ok=%v", v, ok)
	}
	p, _ = s.Post("p1")
	if p.Votes != -1 {
		t.Fatalf("expected score -1 after vote flip (a swing of 2), got %d", p.Votes)
	}

	count := 0
	for _, vt := range s.Snapshot().Votes {
		if vt.UserID == "u1" && vt.TargetID == "p1" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one vote for (u1,p1), got %d", count)
	}

	s.RemoveVote("u1", "p1")
	if _, ok := s.UserVote("u1", "p1"); ok {
		t.Fatal("expected vote removed")
	}
	p, _ = s.Post("p1")
	if p.Votes != 0 {
		t.Fatalf("expected score 0 after removal, got %d", p.Votes)
	}
	// Removing again is a no-op.
	s.RemoveVote("u1", "p1")
}

func TestVoteOnComment(t *testing.T) {
	s := New(newMemKV())
	s.AddPost(model.Post{ID: "p1", Category: model.CategoryDreams, CreatedAt: at(0)})
	s.AddComment(model.Comment{ID: "c1", PostID: "p1", CreatedAt: at(0)})

	s.AddVote(model.Vote{ID: "v1", UserID: "u1", TargetKind: model.TargetComment, TargetID: "c1", Kind: model.Upvote})
	s.AddVote(model.Vote{ID: "v2", UserID: "u2", TargetKind: model.TargetComment, TargetID: "c1", Kind: model.Upvote})
	cs := s.Comments("p1")
	if cs[0].Votes != 2 {
		t.Fatalf("expected comment score 2, got %d", cs[0].Votes)
	}
}

func TestVoteUntaggedTargetProbesPostsThenComments(t *testing.T) {
	s := New(newMemKV())
	s.AddPost(model.Post{ID: "p1", Category: model.CategoryDreams, CreatedAt: at(0)})
	// Legacy snapshots carry no target kind; the score still lands.
	s.AddVote(model.Vote{ID: "v1", UserID: "u1", TargetID: "p1", Kind: model.Upvote})
	p, _ := s.Post("p1")
	if p.Votes != 1 {
		t.Fatalf("expected probe fallback to score the post, got %d", p.Votes)
	}
	// A vote on a target nobody owns is tolerated silently.
	s.AddVote(model.Vote{ID: "v2", UserID: "u1", TargetID: "ghost", Kind: model.Upvote})
}

func TestChatCapKeepsLast100InOrder(t *testing.T) {
	s := New(newMemKV())
	for i := 0; i < 105; i++ {
		s.AddChatMessage(model.ChatMessage{
			ID:        fmt.Sprintf("m%d", i),
			CreatedAt: at(time.Duration(i) * time.Second),
		})
	}
	msgs := s.ChatMessages()
	if len(msgs) != 100 {
		t.Fatalf("expected 100 retained messages, got %d", len(msgs))
	}
	if msgs[0].ID != "m5" || msgs[99].ID != "m104" {
		t.Fatalf("expected m5..m104, got %s..%s", msgs[0].ID, msgs[99].ID)
	}
	for i := 1; i < len(msgs); i++ {
		if msgs[i].CreatedAt.Before(msgs[i-1].CreatedAt) {
			t.Fatal("expected ascending insertion order")
		}
	}
}

func TestCartMergeByItem(t *testing.T) {
	s := New(newMemKV())
	s.AddToCart(model.CartItem{ItemID: "black-candle", Quantity: 1})
	s.AddToCart(model.CartItem{ItemID: "black-candle", Quantity: 2})
	s.AddToCart(model.CartItem{ItemID: "cursed-mask", Quantity: 1})

	cart := s.Cart()
	if len(cart) != 2 {
		t.Fatalf("expected 2 cart entries, got %d", len(cart))
	}
	if cart[0].ItemID != "black-candle" || cart[0].Quantity != 3 {
		t.Fatalf("expected merged quantity 3, got %+v", cart[0])
	}
	s.ClearCart()
	if got := len(s.Cart()); got != 0 {
		t.Fatalf("expected empty cart, got %d", got)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := New(newMemKV())
	s.SeedSamples()
	s.AddMicroFeed(model.MicroFeed{ID: "m1", Content: "night", CreatedAt: at(0)})
	s.AddChatMessage(model.ChatMessage{ID: "ch1", Content: "hello dark", CreatedAt: at(0)})
	s.AddVote(model.Vote{ID: "v1", UserID: "u1", TargetKind: model.TargetPost, TargetID: "post-1", Kind: model.Upvote})
	s.AddToCart(model.CartItem{ItemID: "blood-amulet", Quantity: 2})

	snapshot := s.Export()
	s2 := New(newMemKV())
	if err := s2.Import(snapshot); err != nil {
		t.Fatal(err)
	}
	if s2.Export() != snapshot {
		t.Fatal("expected identical dataset after round-trip")
	}
	if got := len(s2.Posts("")); got != 3 {
		t.Fatalf("expected 3 posts after import, got %d", got)
	}
}

func TestImportMalformed(t *testing.T) {
	s := New(newMemKV())
	err := s.Import("{not json")
	if !errors.Is(err, ErrMalformedData) {
		t.Fatalf("expected ErrMalformedData, got %v", err)
	}
}

func TestImportMergesOverDefaults(t *testing.T) {
	s := New(newMemKV())
	// Older snapshot: no cart key, vote without targetType.
	legacy := `{"user":null,"posts":[{"id":"p1","title":"t","content":"c","category":"dreams","tags":[],"authorId":"u1","votes":0,"createdAt":"2025-08-01T12:00:00Z","commentCount":0}],"votes":[{"id":"v1","userId":"u1","targetId":"p1","type":"upvote"}]}`
	if err := s.Import(legacy); err != nil {
		t.Fatal(err)
	}
	if s.Cart() == nil || len(s.Cart()) != 0 {
		t.Fatal("expected missing cart key to default to empty")
	}
	if got := len(s.Posts("")); got != 1 {
		t.Fatalf("expected 1 post, got %d", got)
	}
}

func TestLoadFailureFallsOpen(t *testing.T) {
	kv := newMemKV()
	kv.getErr = errors.New("disk on fire")
	s := New(kv)
	// Store stays usable on a dead persistence layer.
	s.AddPost(model.Post{ID: "p1", Category: model.CategoryDreams, CreatedAt: at(0)})
	if got := len(s.Posts("")); got != 1 {
		t.Fatalf("expected in-memory state to work, got %d posts", got)
	}
}

func TestWriteFailureKeepsSessionState(t *testing.T) {
	kv := newMemKV()
	kv.putErr = errors.New("quota exceeded")
	s := New(kv)
	s.AddPost(model.Post{ID: "p1", Category: model.CategoryDreams, CreatedAt: at(0)})
	if _, ok := s.Post("p1"); !ok {
		t.Fatal("expected post in session state despite write failure")
	}
}

func TestCorruptBlobFallsBackToDefaults(t *testing.T) {
	kv := newMemKV()
	kv.m[StorageKey] = "{definitely not json"
	s := New(kv)
	if got := len(s.Posts("")); got != 0 {
		t.Fatalf("expected empty dataset on parse failure, got %d posts", got)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forum.db")
	kv, err := storage.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	s := New(kv)
	s.SeedSamples()
	s.AddChatMessage(model.ChatMessage{ID: "ch1", Content: "persist me", CreatedAt: at(0)})
	if err := kv.Close(); err != nil {
		t.Fatal(err)
	}

	kv2, err := storage.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer kv2.Close()
	s2 := New(kv2)
	if got := len(s2.Posts("")); got != 3 {
		t.Fatalf("expected 3 posts after reopen, got %d", got)
	}
	msgs := s2.ChatMessages()
	if len(msgs) != 1 || msgs[0].Content != "persist me" {
		t.Fatalf("expected chat history after reopen, got %v", msgs)
	}
}

func ids(posts []model.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}
