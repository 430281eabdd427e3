// Package simulate fabricates an active community for the forum: a fixed
// roster of personas, a one-time backdated seed of historical activity,
// and five independently jittered generators that write posts, comments,
// microfeeds, chat messages and votes through the store.
package simulate

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"nightrituals/internal/config"
	"nightrituals/internal/ident"
	"nightrituals/internal/logging"
	"nightrituals/internal/metrics"
	"nightrituals/internal/model"
	"nightrituals/internal/schedule"
	"nightrituals/internal/store"
)

// seedPrefix marks simulator-authored posts. Its presence in the dataset
// is the guard that keeps the one-time seed from running twice.
const seedPrefix = "sim-post-"

// Simulator owns the persona roster and content pools and drives the five
// generator loops. All writes go through the store; the simulator keeps no
// dataset state of its own.
type Simulator struct {
	store   *store.Store
	cfg     config.SimulatorConfig
	limiter *rate.Limiter

	mu       sync.Mutex
	running  bool
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	onUpdate func()
}

// New builds a simulator over st and performs the one-time seed if the
// dataset holds no simulator-authored posts yet. Restarts and reloads of
// an already-populated dataset seed nothing.
func New(st *store.Store, cfg config.SimulatorConfig) *Simulator {
	perMin := cfg.PacePerMinute
	if perMin <= 0 {
		perMin = 60
	}
	burst := cfg.PaceBurst
	if burst <= 0 {
		burst = 10
	}
	s := &Simulator{
		store:   st,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(perMin/60), burst),
	}
	s.seedInitialActivity()
	return s
}

// Start registers the update callback and schedules the five generators.
// It is a no-op if the simulator is already running.
func (s *Simulator) Start(onUpdate func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.onUpdate = onUpdate
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.running = true

	gens := []struct {
		kind string
		iv   config.IntervalRange
		fire func() bool
	}{
		{"chat", s.cfg.Chat, s.generateChat},
		{"microfeed", s.cfg.Microfeed, s.generateMicrofeed},
		{"post", s.cfg.Post, s.generatePost},
		{"comment", s.cfg.Comment, s.generateComment},
		{"vote", s.cfg.Vote, s.generateVote},
	}
	s.wg.Add(len(gens))
	for _, g := range gens {
		go s.runGenerator(ctx, g.kind, g.iv, g.fire)
	}
	logging.Info("simulation_start", nil)
}

// Stop cancels every generator and waits for in-flight ticks to finish.
// Stopping an already-stopped simulator is a safe no-op. A later Start
// schedules fresh timers but never re-runs the seed.
func (s *Simulator) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	cancel := s.cancel
	s.cancel = nil
	s.running = false
	s.mu.Unlock()

	// Release the lock before waiting: an in-flight tick may be inside
	// notify, which takes it.
	cancel()
	s.wg.Wait()
	logging.Info("simulation_stop", nil)
}

// Running reports whether the generators are scheduled.
func (s *Simulator) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// ResolvePersona looks up a roster persona by id. Ids outside the roster
// (the real profile, for one) return false so callers can fall back to
// their own identity resolution.
func (s *Simulator) ResolvePersona(id string) (model.Profile, bool) {
	for _, p := range roster {
		if p.ID == id {
			return p, true
		}
	}
	return model.Profile{}, false
}

// Personas returns the full roster.
func (s *Simulator) Personas() []model.Profile {
	return Roster()
}

// Roster returns the fixed persona roster without requiring a simulator.
func Roster() []model.Profile {
	out := make([]model.Profile, len(roster))
	copy(out, roster)
	return out
}

// runGenerator fires f on a jittered cadence, re-randomizing the delay
// after every tick, until ctx is cancelled. Each productive tick notifies
// the registered callback exactly once.
func (s *Simulator) runGenerator(ctx context.Context, kind string, iv config.IntervalRange, fire func() bool) {
	defer s.wg.Done()
	min := time.Duration(iv.MinSeconds) * time.Second
	max := time.Duration(iv.MaxSeconds) * time.Second
	// A config missing the interval section must not become a busy loop.
	if min <= 0 {
		min = time.Second
	}
	if max < min {
		max = min
	}
	t := time.NewTimer(schedule.Jitter(min, max))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.tick(kind, fire)
			t.Reset(schedule.Jitter(min, max))
		}
	}
}

// tick runs one generator firing. Quiet hours, the pacing limiter, and
// generators that find no eligible target all skip the tick; the next
// scheduled one is the natural retry.
func (s *Simulator) tick(kind string, fire func() bool) {
	if schedule.InQuietHours(time.Now(), s.cfg.QuietHours) {
		metrics.IncSkipped(kind)
		return
	}
	if !s.limiter.Allow() {
		metrics.IncSkipped(kind)
		return
	}
	if !fire() {
		metrics.IncSkipped(kind)
		return
	}
	metrics.IncSimulated(kind)
	s.notify()
}

// notify invokes the update callback, fire-and-forget.
func (s *Simulator) notify() {
	s.mu.Lock()
	cb := s.onUpdate
	s.mu.Unlock()
	if cb != nil {
		cb()
	}
}

func randomPersona() model.Profile {
	return roster[rand.Intn(len(roster))]
}

// generateChat posts one random chat line from the pool.
func (s *Simulator) generateChat() bool {
	s.store.AddChatMessage(model.ChatMessage{
		ID:        ident.New("sim-chat"),
		Content:   chatLines[rand.Intn(len(chatLines))],
		AuthorID:  randomPersona().ID,
		CreatedAt: time.Now().UTC(),
	})
	return true
}

// generateMicrofeed posts one random short thought from the pool.
func (s *Simulator) generateMicrofeed() bool {
	s.store.AddMicroFeed(model.MicroFeed{
		ID:        ident.New("sim-micro"),
		Content:   microfeedThoughts[rand.Intn(len(microfeedThoughts))],
		AuthorID:  randomPersona().ID,
		CreatedAt: time.Now().UTC(),
	})
	return true
}

// generatePost creates a fresh forum post from a random category's pool,
// with a random starting score and no comments.
func (s *Simulator) generatePost() bool {
	cats := model.Categories()
	cat := cats[rand.Intn(len(cats))]
	pool := postsByCategory[cat]
	entry := pool[rand.Intn(len(pool))]
	s.store.AddPost(model.Post{
		ID:        ident.New(seedPrefix + "new"),
		Title:     entry.title,
		Content:   entry.content,
		Category:  cat,
		Tags:      entry.tags,
		AuthorID:  randomPersona().ID,
		Votes:     5 + rand.Intn(51),
		CreatedAt: time.Now().UTC(),
	})
	return true
}

// generateComment attaches a canned reply to a random existing post. With
// no posts in the dataset the tick is skipped.
func (s *Simulator) generateComment() bool {
	posts := s.store.Posts("")
	if len(posts) == 0 {
		return false
	}
	target := posts[rand.Intn(len(posts))]
	s.store.AddComment(model.Comment{
		ID:        ident.New("sim-comment"),
		Content:   commentReplies[rand.Intn(len(commentReplies))],
		PostID:    target.ID,
		AuthorID:  randomPersona().ID,
		Votes:     rand.Intn(15) - 3,
		CreatedAt: time.Now().UTC(),
	})
	return true
}

// generateVote casts a vote from a random persona on a random post,
// weighted 70% upvote. A persona that already voted on the chosen post
// does not overwrite; the tick is skipped.
func (s *Simulator) generateVote() bool {
	posts := s.store.Posts("")
	if len(posts) == 0 {
		return false
	}
	target := posts[rand.Intn(len(posts))]
	voter := randomPersona()
	if _, ok := s.store.UserVote(voter.ID, target.ID); ok {
		return false
	}
	kind := model.Upvote
	if rand.Float64() < 0.3 {
		kind = model.Downvote
	}
	s.store.AddVote(model.Vote{
		ID:         ident.New("sim-vote"),
		UserID:     voter.ID,
		TargetKind: model.TargetPost,
		TargetID:   target.ID,
		Kind:       kind,
	})
	return true
}

// seedInitialActivity writes the one-time batch of backdated historical
// content: 8 chat messages, 12 microfeeds, one post per catalog entry and
// 1-5 comments per post, all attributed to random personas. Guarded by the
// presence of any seedPrefix post id.
func (s *Simulator) seedInitialActivity() {
	for _, p := range s.store.Posts("") {
		if strings.HasPrefix(p.ID, seedPrefix) {
			return
		}
	}

	now := time.Now().UTC()

	for i := 0; i < 8; i++ {
		s.store.AddChatMessage(model.ChatMessage{
			ID:        ident.New("sim-chat"),
			Content:   chatLines[rand.Intn(len(chatLines))],
			AuthorID:  randomPersona().ID,
			CreatedAt: now.Add(-time.Duration(i) * 15 * time.Minute),
		})
	}

	for i := 0; i < 12; i++ {
		s.store.AddMicroFeed(model.MicroFeed{
			ID:        ident.New("sim-micro"),
			Content:   microfeedThoughts[rand.Intn(len(microfeedThoughts))],
			AuthorID:  randomPersona().ID,
			CreatedAt: now.Add(-time.Duration(i) * 2 * time.Hour),
		})
	}

	postCounter := 0
	for _, cat := range model.Categories() {
		for _, entry := range postsByCategory[cat] {
			post := model.Post{
				ID:           ident.New(seedPrefix + string(cat)),
				Title:        entry.title,
				Content:      entry.content,
				Category:     cat,
				Tags:         entry.tags,
				AuthorID:     randomPersona().ID,
				Votes:        10 + rand.Intn(100),
				CreatedAt:    now.Add(-time.Duration(postCounter) * 4 * time.Hour),
				CommentCount: rand.Intn(8),
			}
			postCounter++
			s.store.AddPost(post)

			numComments := 1 + rand.Intn(5)
			for i := 0; i < numComments; i++ {
				s.store.AddComment(model.Comment{
					ID:        ident.New("sim-comment"),
					Content:   commentReplies[rand.Intn(len(commentReplies))],
					PostID:    post.ID,
					AuthorID:  randomPersona().ID,
					Votes:     rand.Intn(20) - 5,
					CreatedAt: now.Add(-time.Duration(i) * 30 * time.Minute),
				})
			}
		}
	}
	logging.Info("simulation_seed", map[string]any{"posts": postCounter})
}
