package seed

import (
	"fmt"
	"log"

	"plume/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options controls how much data a seeding run produces.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// DefaultOptions returns a medium-sized data set suitable for local
// development.
func DefaultOptions() Options {
	return Options{
		NumUsers: 25,
		NumPosts: 200,
	}
}

// Seeder populates the database with generated users, groups, posts,
// follows, and comments.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	opts    Options
}

// NewSeeder creates a Seeder with the given options.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	if opts.NumUsers <= 0 {
		opts.NumUsers = DefaultOptions().NumUsers
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = DefaultOptions().NumPosts
	}
	return &Seeder{db: db, factory: NewFactory(db), opts: opts}
}

var groupTitles = []string{
	"Photography",
	"Home Cooking",
	"Trail Running",
	"Mechanical Keyboards",
	"Film Club",
	"Urban Gardening",
}

// Run executes a full seeding pass. When ShouldClean is set all existing
// rows are removed first.
func (s *Seeder) Run() error {
	if s.opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return fmt.Errorf("clearing database: %w", err)
		}
	}

	users, err := s.seedUsers()
	if err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}
	groups, err := s.seedGroups()
	if err != nil {
		return fmt.Errorf("seeding groups: %w", err)
	}
	posts, err := s.seedPosts(users, groups)
	if err != nil {
		return fmt.Errorf("seeding posts: %w", err)
	}
	if err := s.seedFollows(users); err != nil {
		return fmt.Errorf("seeding follows: %w", err)
	}
	if err := s.seedComments(users, posts); err != nil {
		return fmt.Errorf("seeding comments: %w", err)
	}

	log.Printf("seeded %d users, %d groups, %d posts", len(users), len(groups), len(posts))
	return nil
}

func (s *Seeder) seedUsers() ([]*models.User, error) {
	users := make([]*models.User, 0, s.opts.NumUsers)

	// A predictable account for manual testing.
	admin, err := s.factory.CreateUser(func(u *models.User) {
		u.Username = "admin"
		u.Email = "admin@plume.local"
		u.IsAdmin = true
	})
	if err != nil {
		return nil, err
	}
	users = append(users, admin)

	for i := 1; i < s.opts.NumUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) seedGroups() ([]*models.Group, error) {
	groups := make([]*models.Group, 0, len(groupTitles))
	for _, title := range groupTitles {
		group, err := s.factory.CreateGroup(title)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (s *Seeder) seedPosts(users []*models.User, groups []*models.Group) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, s.opts.NumPosts)
	for i := 0; i < s.opts.NumPosts; i++ {
		author := users[s.factory.rng.Intn(len(users))]
		var group *models.Group
		// Roughly half of all posts land in a group.
		if s.factory.rng.Intn(2) == 0 {
			group = groups[s.factory.rng.Intn(len(groups))]
		}
		posts = append(posts, s.factory.BuildPost(author, group, 90))
	}
	if err := s.factory.CreatePostsBatch(posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Seeder) seedFollows(users []*models.User) error {
	for _, follower := range users {
		count := 2 + s.factory.rng.Intn(5)
		for i := 0; i < count; i++ {
			followed := users[s.factory.rng.Intn(len(users))]
			if followed.ID == follower.ID {
				continue
			}
			follow := models.Follow{FollowerID: follower.ID, FollowedID: followed.ID}
			err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow).Error
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) seedComments(users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		count := s.factory.rng.Intn(4)
		for i := 0; i < count; i++ {
			commenter := users[s.factory.rng.Intn(len(users))]
			if _, err := s.factory.CreateComment(commenter, post); err != nil {
				return err
			}
		}
	}
	return nil
}

// ClearAll removes all seeded rows. Deletion order respects foreign keys.
func (s *Seeder) ClearAll() error {
	tables := []string{"comments", "follows", "posts", "groups", "users"}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
