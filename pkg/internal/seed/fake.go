package seed

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/plumeworks/plume/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// seedFakeProfiles layers synthetic profiles and posts on top of the fixed
// dataset, for hosts that want a fuller-looking demo.
func seedFakeProfiles(source *gorm.DB, count int) error {
	for i := 0; i < count; i++ {
		user := models.User{
			ID:       "user_" + gofakeit.UUID(),
			Username: gofakeit.Username(),
			Name:     gofakeit.Name(),
			Bio:      gofakeit.Sentence(12),
			Avatar:   gofakeit.ImageURL(400, 400),
		}
		if err := source.Create(&user).Error; err != nil {
			return err
		}

		posts := gofakeit.Number(1, 3)
		for j := 0; j < posts; j++ {
			paragraphs := make([]string, gofakeit.Number(3, 5))
			for k := range paragraphs {
				paragraphs[k] = gofakeit.Paragraph(1, gofakeit.Number(2, 4), 12, " ")
			}

			published := gofakeit.DateRange(time.Now().AddDate(0, -6, 0), time.Now())
			post := models.Post{
				ID:          "post_" + gofakeit.UUID(),
				AuthorID:    user.ID,
				Title:       gofakeit.Sentence(6),
				Category:    lo.Sample(models.PostCategories),
				Excerpt:     gofakeit.Sentence(14),
				Image:       gofakeit.ImageURL(1080, 720),
				Date:        published.Format("January 2, 2006"),
				PublishedAt: published,
				Content:     datatypes.NewJSONSlice(paragraphs),
			}
			if err := source.Create(&post).Error; err != nil {
				return err
			}
		}
	}

	log.Info().Int("users", count).Msg("Generated synthetic demo profiles.")
	return nil
}
