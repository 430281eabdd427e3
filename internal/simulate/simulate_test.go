package simulate

import (
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"nightrituals/internal/config"
	"nightrituals/internal/model"
	"nightrituals/internal/storage"
	"nightrituals/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	kv, err := storage.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return store.New(kv)
}

func simCfg() config.SimulatorConfig {
	cfg := config.Default().Simulator
	return cfg
}

func countSeedPosts(st *store.Store) int {
	n := 0
	for _, p := range st.Posts("") {
		if strings.HasPrefix(p.ID, seedPrefix) {
			n++
		}
	}
	return n
}

func TestSeedInitialActivityOnce(t *testing.T) {
	st := newTestStore(t)
	New(st, simCfg())

	if got := len(st.ChatMessages()); got != 8 {
		t.Fatalf("expected 8 seeded chat messages, got %d", got)
	}
	if got := len(st.MicroFeeds()); got != 12 {
		t.Fatalf("expected 12 seeded microfeeds, got %d", got)
	}
	// One post per catalog entry: 5 categories x 3 entries.
	posts := st.Posts("")
	if len(posts) != 15 {
		t.Fatalf("expected 15 seeded posts, got %d", len(posts))
	}
	for _, p := range posts {
		if !strings.HasPrefix(p.ID, seedPrefix) {
			t.Fatalf("expected seed marker on %s", p.ID)
		}
		if len(st.Comments(p.ID)) < 1 || len(st.Comments(p.ID)) > 5 {
			t.Fatalf("expected 1-5 comments on %s, got %d", p.ID, len(st.Comments(p.ID)))
		}
	}

	// Constructing a second simulator over the same populated dataset
	// seeds nothing.
	New(st, simCfg())
	if got := countSeedPosts(st); got != 15 {
		t.Fatalf("expected seed post count unchanged, got %d", got)
	}
	if got := len(st.ChatMessages()); got != 8 {
		t.Fatalf("expected chat untouched on re-seed, got %d", got)
	}
}

func TestSeedSkippedWhenMarkerPresent(t *testing.T) {
	st := newTestStore(t)
	st.AddPost(model.Post{ID: seedPrefix + "guard", Category: model.CategoryDreams, CreatedAt: time.Now().UTC()})
	New(st, simCfg())
	if got := len(st.Posts("")); got != 1 {
		t.Fatalf("expected no seed over marked dataset, got %d posts", got)
	}
}

func TestGenerators(t *testing.T) {
	st := newTestStore(t)
	s := New(st, simCfg())
	chatBefore := len(st.ChatMessages())
	microBefore := len(st.MicroFeeds())
	postsBefore := len(st.Posts(""))

	if !s.generateChat() {
		t.Fatal("chat generator should always fire")
	}
	if got := len(st.ChatMessages()); got != chatBefore+1 {
		t.Fatalf("expected one new chat message, got %d", got-chatBefore)
	}
	if !s.generateMicrofeed() {
		t.Fatal("microfeed generator should always fire")
	}
	if got := len(st.MicroFeeds()); got != microBefore+1 {
		t.Fatalf("expected one new microfeed, got %d", got-microBefore)
	}
	if !s.generatePost() {
		t.Fatal("post generator should always fire")
	}
	posts := st.Posts("")
	if len(posts) != postsBefore+1 {
		t.Fatalf("expected one new post, got %d", len(posts)-postsBefore)
	}
	for _, p := range posts {
		if p.Votes < 5 && strings.HasPrefix(p.ID, seedPrefix+"new") {
			t.Fatalf("expected generated post score >= 5, got %d", p.Votes)
		}
	}
	if !s.generateComment() {
		t.Fatal("comment generator should fire with posts present")
	}
	if !s.generateVote() {
		t.Fatal("vote generator should fire on a fresh dataset")
	}
}

func TestGeneratorsSkipWithoutPosts(t *testing.T) {
	st := newTestStore(t)
	st.AddPost(model.Post{ID: seedPrefix + "guard", Category: model.CategoryDreams, CreatedAt: time.Now().UTC()})
	s := New(st, simCfg())
	// Strip the guard by importing an empty dataset; the simulator keeps
	// no state, so generators see the empty store directly.
	if err := st.Import(`{}`); err != nil {
		t.Fatal(err)
	}
	if s.generateComment() {
		t.Fatal("comment generator must skip with no posts")
	}
	if s.generateVote() {
		t.Fatal("vote generator must skip with no posts")
	}
}

func TestVoteGeneratorNeverOverwrites(t *testing.T) {
	st := newTestStore(t)
	st.AddPost(model.Post{ID: seedPrefix + "guard", Category: model.CategoryDreams, CreatedAt: time.Now().UTC()})
	s := New(st, simCfg())

	// Every persona has already voted on the only post.
	for _, p := range s.Personas() {
		st.AddVote(model.Vote{
			ID:         "v-" + p.ID,
			UserID:     p.ID,
			TargetKind: model.TargetPost,
			TargetID:   seedPrefix + "guard",
			Kind:       model.Upvote,
		})
	}
	post, _ := st.Post(seedPrefix + "guard")
	scoreBefore := post.Votes

	for i := 0; i < 50; i++ {
		if s.generateVote() {
			t.Fatal("vote generator must skip when the persona already voted")
		}
	}
	post, _ = st.Post(seedPrefix + "guard")
	if post.Votes != scoreBefore {
		t.Fatalf("expected score unchanged, got %d -> %d", scoreBefore, post.Votes)
	}
}

func TestStartStopLifecycle(t *testing.T) {
	st := newTestStore(t)
	s := New(st, simCfg())

	if s.Running() {
		t.Fatal("expected stopped after construction")
	}
	s.Stop() // stop while stopped is a no-op

	s.Start(func() {})
	if !s.Running() {
		t.Fatal("expected running after start")
	}
	s.Start(func() {}) // start while running is a no-op
	s.Stop()
	if s.Running() {
		t.Fatal("expected stopped after stop")
	}
	s.Stop()

	// Restart schedules fresh timers but never re-seeds.
	postsBefore := countSeedPosts(st)
	s.Start(func() {})
	s.Stop()
	if got := countSeedPosts(st); got != postsBefore {
		t.Fatalf("expected no re-seed across restart, got %d -> %d", postsBefore, got)
	}
}

func TestTickNotifiesOncePerFiring(t *testing.T) {
	st := newTestStore(t)
	s := New(st, simCfg())
	var fired atomic.Int64
	s.onUpdate = func() { fired.Add(1) }

	s.tick("chat", s.generateChat)
	if got := fired.Load(); got != 1 {
		t.Fatalf("expected one callback per firing, got %d", got)
	}
	// A skipped tick notifies nobody.
	if err := st.Import(`{}`); err != nil {
		t.Fatal(err)
	}
	s.tick("vote", s.generateVote)
	if got := fired.Load(); got != 1 {
		t.Fatalf("expected no callback on skipped tick, got %d", got)
	}
}

func TestQuietHoursSkipTicks(t *testing.T) {
	st := newTestStore(t)
	cfg := simCfg()
	cfg.QuietHours = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23}
	s := New(st, cfg)
	var fired atomic.Int64
	s.onUpdate = func() { fired.Add(1) }

	before := len(st.ChatMessages())
	s.tick("chat", s.generateChat)
	if fired.Load() != 0 || len(st.ChatMessages()) != before {
		t.Fatal("expected tick skipped during quiet hours")
	}
}

func TestResolvePersona(t *testing.T) {
	st := newTestStore(t)
	s := New(st, simCfg())

	p, ok := s.ResolvePersona("sim-user-1")
	if !ok || p.Nickname != "CrimsonWhisper" {
		t.Fatalf("expected CrimsonWhisper, got %+v ok=%v", p, ok)
	}
	if _, ok := s.ResolvePersona("user-real"); ok {
		t.Fatal("expected not-found for ids outside the roster")
	}
	if got := len(Roster()); got != 15 {
		t.Fatalf("expected 15 personas, got %d", got)
	}
}

func TestSeededScoresWithinBounds(t *testing.T) {
	st := newTestStore(t)
	New(st, simCfg())
	for _, p := range st.Posts("") {
		if p.Votes < 10 || p.Votes > 109 {
			t.Fatalf("seed post score out of range: %d", p.Votes)
		}
		for _, c := range st.Comments(p.ID) {
			if c.Votes < -5 || c.Votes > 14 {
				t.Fatalf("seed comment score out of range: %d", c.Votes)
			}
		}
	}
}
