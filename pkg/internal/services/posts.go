package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/pemistahl/lingua-go"
	"github.com/plumeworks/plume/pkg/internal/database"
	"github.com/plumeworks/plume/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// PostDateLayout is the display form posts carry alongside their canonical
// published instant.
const PostDateLayout = "January 2, 2006"

// NewRecordID mints an opaque record id. Wall-clock ids collide under
// rapid successive writes, so these are uuid-backed.
func NewRecordID(prefix string) string {
	return prefix + "_" + uuid.New().String()
}

var (
	languageDetector     lingua.LanguageDetector
	languageDetectorOnce sync.Once
)

// DetectPostLanguage guesses the language of a post from its title and
// paragraphs. Returns an empty string when there is nothing to go on.
func DetectPostLanguage(title string, content []string) string {
	languageDetectorOnce.Do(func() {
		languageDetector = lingua.NewLanguageDetectorBuilder().
			FromAllSpokenLanguages().
			Build()
	})

	probe := strings.TrimSpace(strings.Join(append([]string{title}, content...), "\n"))
	if len(probe) == 0 {
		return ""
	}
	if language, ok := languageDetector.DetectLanguageOf(probe); ok {
		return strings.ToLower(language.IsoCode639_1().String())
	}
	return ""
}

// ListPosts returns every post, enriched with its author, ordered comments
// and like set. The enrichment is recomputed on every call; the joins run
// against the indexed tables instead of rescanning flat collections.
func ListPosts() ([]models.Post, error) {
	var items []models.Post
	if err := database.C.Order("created_at ASC, id ASC").Find(&items).Error; err != nil {
		return items, fmt.Errorf("unable to list posts: %v", err)
	}
	return enrichPosts(items)
}

// GetUserPosts returns the posts of one author in creation order, which is
// not necessarily chronological when posts carry backdated dates.
func GetUserPosts(authorID string) ([]models.Post, error) {
	var items []models.Post
	if err := database.C.
		Where("author_id = ?", authorID).
		Order("created_at ASC, id ASC").
		Find(&items).Error; err != nil {
		return items, fmt.Errorf("unable to list user posts: %v", err)
	}
	return enrichPosts(items)
}

// GetPost looks a post up by id and enriches it. Returns nil without an
// error when the post does not exist.
func GetPost(id string) (*models.Post, error) {
	var item models.Post
	if err := database.C.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get post: %v", err)
	}

	enriched, err := enrichPosts([]models.Post{item})
	if err != nil {
		return nil, err
	}
	return &enriched[0], nil
}

// NewPost stores a new post. The id, the display date and the canonical
// published instant are assigned here; likes and comments start empty. The
// author id is taken as-is, the store performs no referential checks. The
// returned record is the raw stored form, not the enriched one.
func NewPost(item models.Post) (models.Post, error) {
	now := time.Now()
	item.ID = NewRecordID("post")
	item.Date = now.Format(PostDateLayout)
	item.PublishedAt = now
	if len(item.Language) == 0 {
		item.Language = DetectPostLanguage(item.Title, item.Content)
	}
	item.Author = nil
	item.Comments = []models.Comment{}
	item.Likes = []string{}

	log.Debug().Str("id", item.ID).Str("author", item.AuthorID).Msg("Storing a new post...")
	if err := database.C.Create(&item).Error; err != nil {
		return item, fmt.Errorf("unable to create post: %v", err)
	}

	return item, nil
}

// UpdatePost shallow-merges the given fields into an existing post and
// returns the merged raw record, or nil when no post has that id. Keys are
// column names. When a new display date arrives without an explicit
// published instant, the instant is re-derived from it so feed ordering
// stays consistent.
func UpdatePost(id string, updates map[string]any) (*models.Post, error) {
	var item models.Post
	if err := database.C.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get post for update: %v", err)
	}

	if raw, ok := updates["date"].(string); ok {
		if _, explicit := updates["published_at"]; !explicit {
			if when, err := dateparse.ParseAny(raw); err == nil {
				updates["published_at"] = when
			} else {
				log.Warn().Str("date", raw).Err(err).Msg("Unable to parse display date, keeping the old published instant...")
			}
		}
	}

	if err := database.C.Model(&item).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("unable to update post: %v", err)
	}

	var merged models.Post
	if err := database.C.Where("id = ?", id).First(&merged).Error; err != nil {
		return nil, fmt.Errorf("unable to reload post: %v", err)
	}
	return &merged, nil
}

// DeletePost removes a post together with its embedded comments and likes.
// Reports and subscriptions never reference posts, so nothing else is
// touched. Returns whether a record was actually removed.
func DeletePost(id string) (bool, error) {
	var deleted bool
	err := database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Post{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("unable to delete post: %v", err)
	}
	return deleted, nil
}

// enrichPosts resolves authors, comment authors and like sets for a batch
// of posts. Dangling author ids leave the author nil; consumers tolerate
// that. Absent collections come back as empty slices, never nil.
func enrichPosts(items []models.Post) ([]models.Post, error) {
	if len(items) == 0 {
		return []models.Post{}, nil
	}

	var users []models.User
	if err := database.C.Find(&users).Error; err != nil {
		return items, fmt.Errorf("unable to load users for enrichment: %v", err)
	}
	userMap := lo.SliceToMap(users, func(item models.User) (string, *models.User) {
		return item.ID, &item
	})

	idx := lo.Map(items, func(item models.Post, index int) string {
		return item.ID
	})

	var comments []models.Comment
	if err := database.C.
		Where("post_id IN ?", idx).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return items, fmt.Errorf("unable to load comments for enrichment: %v", err)
	}
	for i := range comments {
		comments[i].User = userMap[comments[i].UserID]
	}
	commentMap := lo.GroupBy(comments, func(item models.Comment) string {
		return item.PostID
	})

	var likes []models.Like
	if err := database.C.Where("post_id IN ?", idx).Find(&likes).Error; err != nil {
		return items, fmt.Errorf("unable to load likes for enrichment: %v", err)
	}
	likeMap := lo.MapValues(
		lo.GroupBy(likes, func(item models.Like) string {
			return item.PostID
		}),
		func(edges []models.Like, _ string) []string {
			return lo.Map(edges, func(edge models.Like, _ int) string {
				return edge.UserID
			})
		},
	)

	for i := range items {
		items[i].Author = userMap[items[i].AuthorID]
		items[i].Comments = commentMap[items[i].ID]
		if items[i].Comments == nil {
			items[i].Comments = []models.Comment{}
		}
		items[i].Likes = likeMap[items[i].ID]
		if items[i].Likes == nil {
			items[i].Likes = []string{}
		}
	}

	return items, nil
}
