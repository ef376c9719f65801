package service

import (
	"context"
	"fmt"
	"time"

	"retrorank/internal/models"
	"retrorank/internal/repository"
)

// Seeder installs the demo community on an empty store: five users, eight
// retro-gaming posts and a handful of comments. Ensure is idempotent and is
// re-run before every post listing, like the mock API it replaces.
type Seeder struct {
	repo    *repository.Repository
	enabled bool
	clock   clock
}

func NewSeeder(repo *repository.Repository, enabled bool) *Seeder {
	return &Seeder{repo: repo, enabled: enabled, clock: systemClock{}}
}

const seedPassword = "123456"

var seedUsers = []models.CreateUserRequest{
	{Name: "Gamer Retro", Email: "gamer@retro.com", Password: seedPassword},
	{Name: "PixelMaster", Email: "pixel@retro.com", Password: seedPassword},
	{Name: "NostalgiaGamer", Email: "nostalgia@retro.com", Password: seedPassword},
	{Name: "RetroCollector", Email: "collector@retro.com", Password: seedPassword},
	{Name: "8BitHero", Email: "hero@retro.com", Password: seedPassword},
}

type seedPost struct {
	creator  string // seed user email
	title    string
	content  string
	likes    int
	dislikes int
	age      time.Duration
}

var seedPosts = []seedPost{
	{
		creator: "gamer@retro.com",
		title:   "Top 5 Super Nintendo games",
		content: "1. Super Mario World\n2. The Legend of Zelda: A Link to the Past\n3. Chrono Trigger\n4. Super Metroid\n5. Donkey Kong Country",
		likes:   42, dislikes: 2, age: 48 * time.Hour,
	},
	{
		creator: "pixel@retro.com",
		title:   "Best 8-bit soundtracks",
		content: "8-bit music has a charm of its own. My favorites:\n- Mega Man 2 (Dr. Wily Stage)\n- Castlevania (Vampire Killer)\n- Super Mario Bros (Overworld Theme)\n- The Legend of Zelda (Dungeon Theme)\n\nWhat's yours?",
		likes:   35, dislikes: 1, age: 24 * time.Hour,
	},
	{
		creator: "nostalgia@retro.com",
		title:   "Discussion: which Zelda is the best?",
		content: "There's always debate about the best game in the series. For me A Link to the Past is unbeatable, but I get the Ocarina of Time and Breath of the Wild crowds. What do you think?",
		likes:   28, dislikes: 3, age: 18 * time.Hour,
	},
	{
		creator: "collector@retro.com",
		title:   "Mega Drive games everyone should play",
		content: "The Genesis had incredible games:\n\n- Sonic the Hedgehog 2\n- Streets of Rage 2\n- Phantasy Star IV\n- Gunstar Heroes\n- Shining Force\n\nWhich ones have you played?",
		likes:   31, dislikes: 0, age: 12 * time.Hour,
	},
	{
		creator: "hero@retro.com",
		title:   "Pixel art never ages",
		content: "Anyone else think the pixel art of old games has a timeless beauty? Final Fantasy VI, Secret of Mana and Chrono Trigger are interactive art galleries.",
		likes:   47, dislikes: 1, age: 8 * time.Hour,
	},
	{
		creator: "pixel@retro.com",
		title:   "Best NES platformers",
		content: "My list:\n\n1. Super Mario Bros 3\n2. Mega Man 2\n3. Castlevania\n4. Ninja Gaiden\n5. DuckTales\n\nWhat's your favorite?",
		likes:   39, dislikes: 2, age: 6 * time.Hour,
	},
	{
		creator: "nostalgia@retro.com",
		title:   "Soundtracks that defined our childhood",
		content: "Some tracks still give me chills:\n\n- Green Hill Zone (Sonic)\n- Overworld Theme (Super Mario Bros)\n- Main Theme (The Legend of Zelda)\n- Stage 1 (Mega Man 2)\n- Bloody Tears (Castlevania)",
		likes:   52, dislikes: 0, age: 4 * time.Hour,
	},
	{
		creator: "gamer@retro.com",
		title:   "Classic RPGs everyone should know",
		content: "The 90s RPGs are masterpieces:\n\n- Chrono Trigger (SNES)\n- Final Fantasy VI (SNES)\n- EarthBound (SNES)\n- Secret of Mana (SNES)\n- Phantasy Star IV (Mega Drive)",
		likes:   44, dislikes: 1, age: 2 * time.Hour,
	},
}

type seedComment struct {
	postIndex int // index into seedPosts
	creator   string
	content   string
}

var seedComments = []seedComment{
	{0, "pixel@retro.com", "Super Mario World really is amazing, it deserves the top spot."},
	{0, "nostalgia@retro.com", "Totally agree with this list! Chrono Trigger is a masterpiece."},
	{1, "collector@retro.com", "The Mega Man 2 soundtrack is simply perfect. Dr. Wily Stage is epic!"},
	{2, "hero@retro.com", "A Link to the Past is my favorite too. The exploration is perfect."},
	{3, "gamer@retro.com", "Gunstar Heroes is one of the best action games I've ever played!"},
}

// Ensure seeds whatever is missing. Existing users skip the user seed,
// existing posts skip the post/comment seed.
func (s *Seeder) Ensure(ctx context.Context) error {
	if !s.enabled {
		return nil
	}

	userIDs, err := s.ensureUsers(ctx)
	if err != nil {
		return err
	}

	posts, err := s.repo.Post.List(ctx)
	if err != nil {
		return fmt.Errorf("checking posts: %w", err)
	}
	if len(posts) > 0 {
		return nil
	}

	return s.seedContent(ctx, userIDs)
}

// ensureUsers creates the default users when none exist, and in every case
// returns a seed-email -> user id map for wiring post creators.
func (s *Seeder) ensureUsers(ctx context.Context) (map[string]string, error) {
	ids := make(map[string]string, len(seedUsers))

	for _, req := range seedUsers {
		user, err := s.repo.User.GetByEmail(ctx, req.Email)
		if err == nil {
			ids[req.Email] = user.ID
			continue
		}

		created, err := s.repo.User.Create(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("seeding user %s: %w", req.Email, err)
		}
		ids[req.Email] = created.ID
	}

	return ids, nil
}

func (s *Seeder) seedContent(ctx context.Context, userIDs map[string]string) error {
	now := s.clock.Now()
	postIDs := make([]string, len(seedPosts))

	// Create oldest-last: the repository prepends, so the stored order ends
	// up matching the declared order.
	for i := len(seedPosts) - 1; i >= 0; i-- {
		sp := seedPosts[i]
		post := &models.Post{
			ID:          models.NewID(),
			CreatorID:   userIDs[sp.creator],
			CreatorName: s.userName(sp.creator),
			Title:       sp.title,
			Content:     sp.content,
			Likes:       sp.likes,
			Dislikes:    sp.dislikes,
			CreatedAt:   now.Add(-sp.age),
		}
		if err := s.repo.Post.Create(ctx, post); err != nil {
			return fmt.Errorf("seeding post %q: %w", sp.title, err)
		}
		postIDs[i] = post.ID
	}

	for _, sc := range seedComments {
		comment := &models.Comment{
			ID:          models.NewID(),
			PostID:      postIDs[sc.postIndex],
			CreatorID:   userIDs[sc.creator],
			CreatorName: s.userName(sc.creator),
			Content:     sc.content,
			CreatedAt:   now.Add(-seedPosts[sc.postIndex].age + time.Hour),
		}
		if err := s.repo.Comment.Create(ctx, comment); err != nil {
			return fmt.Errorf("seeding comment: %w", err)
		}
		if err := s.repo.Post.RefreshCommentCount(ctx, comment.PostID); err != nil {
			return fmt.Errorf("refreshing seeded count: %w", err)
		}
	}

	return nil
}

func (s *Seeder) userName(email string) string {
	for _, u := range seedUsers {
		if u.Email == email {
			return u.Name
		}
	}
	return ""
}
