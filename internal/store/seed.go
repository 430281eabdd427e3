package store

import (
	"time"

	"nightrituals/internal/model"
)

// SeedSamples populates an empty store with a fixed sample profile and
// three sample posts. The emptiness check on the post collection makes it
// idempotent; a store with any posts is left untouched. It reports whether
// seeding happened.
func (s *Store) SeedSamples() bool {
	s.mu.Lock()
	empty := len(s.data.Posts) == 0
	s.mu.Unlock()
	if !empty {
		return false
	}

	now := time.Now().UTC()
	sample := model.Profile{
		ID:        "sample-user-1",
		Nickname:  "ShadowWalker",
		Avatar:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=40&h=40",
		CreatedAt: now,
	}

	posts := []model.Post{
		{
			ID:    "post-1",
			Title: "The Whispers in My Bedroom Wall",
			Content: "Every night at 3:33 AM, I hear them. Soft whispers coming from inside my bedroom wall. " +
				"At first, I thought it was pipes or settling wood, but last night... they whispered my name. " +
				"The voice was my own, but I was awake, standing in the middle of the room. I pressed my ear " +
				"against the wall, and the whispers grew louder. They weren't speaking English, or any language " +
				"I recognized. But somehow, I understood every word.",
			Category:     model.CategoryNightmares,
			Tags:         []string{"horror", "supernatural", "whispers"},
			Image:        "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			AuthorID:     sample.ID,
			Votes:        666,
			CreatedAt:    now.Add(-3 * time.Hour),
			CommentCount: 13,
		},
		{
			ID:    "post-2",
			Title: "The Ritual That Changed Everything",
			Content: "I found this ancient text in my grandmother's attic after she passed. The symbols looked " +
				"familiar, like something from a fever dream. Against all logic, I performed the ritual described " +
				"within. Now I can see things that others cannot. The veil between worlds has been lifted, and " +
				"I'm not sure I can ever go back to my old reality.",
			Category:     model.CategoryOccult,
			Tags:         []string{"ritual", "occult", "supernatural"},
			AuthorID:     sample.ID,
			Votes:        1337,
			CreatedAt:    now.Add(-6 * time.Hour),
			CommentCount: 27,
		},
		{
			ID:    "post-3",
			Title: "Ode to the Endless Night",
			Content: "In shadows deep where silence screams,\nAnd moonlight cuts through broken dreams,\n" +
				"I dance with phantoms of my past,\nIn darkness that forever lasts.\n\n" +
				"The raven calls from twisted trees,\nWhile autumn wind through branches flees,\n" +
				"And in this realm of endless night,\nI've found my home away from light.",
			Category:     model.CategoryDarkPoetry,
			Tags:         []string{"poetry", "darkness", "gothic"},
			AuthorID:     sample.ID,
			Votes:        42,
			CreatedAt:    now.Add(-24 * time.Hour),
			CommentCount: 8,
		},
	}

	for _, p := range posts {
		s.AddPost(p)
	}
	s.SetProfile(sample)
	return true
}
