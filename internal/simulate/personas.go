package simulate

import (
	"strconv"
	"time"

	"nightrituals/internal/model"
)

// The fixed roster of synthetic identities. Personas are never persisted
// as profiles; they exist only to attribute generated content.
var roster = buildRoster()

func buildRoster() []model.Profile {
	now := time.Now().UTC()
	names := []struct {
		nickname string
		avatar   string
	}{
		{"CrimsonWhisper", "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=40&h=40"},
		{"VoidSeeker", "https://images.unsplash.com/photo-1547036967-23d11aacaee0?ixlib=rb-4.0.3&auto=format&fit=crop&w=40&h=40"},
		{"ShadowBound", "https://images.unsplash.com/photo-1578321272176-b7bbc0679853?ixlib=rb-4.0.3&auto=format&fit=crop&w=40&h=40"},
		{"DarkMuse", "https://images.unsplash.com/photo-1509909756405-be0199881695?ixlib=rb-4.0.3&auto=format&fit=crop&w=40&h=40"},
		{"NightCrawler", "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?ixlib=rb-4.0.3&auto=format&fit=crop&w=40&h=40"},
		{"CorruptedSoul", "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?ixlib=rb-4.0.3&auto=format&fit=crop&w=40&h=40"},
		{"EternalVoid", "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=40&h=40"},
		{"BloodMoon", "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=40&h=40"},
		{"RavenQueen", "https://images.unsplash.com/photo-1544005313-94ddf0286df2?ixlib=rb-4.0.3&auto=format&fit=crop&w=40&h=40"},
		{"PhantomScribe", "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=40&h=40"},
		{"NecroMancer", "https://images.unsplash.com/photo-1463453091185-61582044d556?ixlib=rb-4.0.3&auto=format&fit=crop&w=40&h=40"},
		{"DarkOracle", "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?ixlib=rb-4.0.3&auto=format&fit=crop&w=40&h=40"},
		{"CryptKeeper", "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-4.0.3&auto=format&fit=crop&w=40&h=40"},
		{"Banshee13", "https://images.unsplash.com/photo-1494790108755-2616c88a0e04?ixlib=rb-4.0.3&auto=format&fit=crop&w=40&h=40"},
		{"GrimReaper666", "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?ixlib=rb-4.0.3&auto=format&fit=crop&w=40&h=40"},
	}
	out := make([]model.Profile, len(names))
	for i, n := range names {
		out[i] = model.Profile{
			ID:        "sim-user-" + strconv.Itoa(i+1),
			Nickname:  n.nickname,
			Avatar:    n.avatar,
			CreatedAt: now,
		}
	}
	return out
}
