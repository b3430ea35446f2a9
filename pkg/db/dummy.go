package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedDummyData fills the database with a small demo dataset: one poll that
// opens tomorrow plus an anonymous identity. Used by cmd/seed.
func SeedDummyData(db *gorm.DB) error {
	ctx := context.Background()

	today := time.Now().Truncate(24 * time.Hour)

	poll1 := Poll{
		Name:        "Animation survey",
		Description: "Tell us what you think about the new shorts",
		StartDate:   today.AddDate(0, 0, 1),
		EndDate:     today.AddDate(0, 0, 14),
	}
	if err := gorm.G[Poll](db).Create(ctx, &poll1); err != nil {
		return err
	}

	question1 := Question{
		PollID: poll1.ID,
		Text:   "What did you like the most?",
		Type:   QuestionTypeText,
	}
	if err := gorm.G[Question](db).Create(ctx, &question1); err != nil {
		return err
	}

	question2 := Question{
		PollID: poll1.ID,
		Text:   "Which short was your favourite?",
		Type:   QuestionTypeSingleChoice,
	}
	if err := gorm.G[Question](db).Create(ctx, &question2); err != nil {
		return err
	}

	for _, text := range []string{"The fox", "The lighthouse", "Paper planes"} {
		choice := Choice{QuestionID: question2.ID, Text: text}
		if err := gorm.G[Choice](db).Create(ctx, &choice); err != nil {
			return err
		}
	}

	question3 := Question{
		PollID: poll1.ID,
		Text:   "Which genres should we explore next?",
		Type:   QuestionTypeMultipleChoices,
	}
	if err := gorm.G[Question](db).Create(ctx, &question3); err != nil {
		return err
	}

	for _, text := range []string{"Comedy", "Drama", "Documentary", "Musical"} {
		choice := Choice{QuestionID: question3.ID, Text: text}
		if err := gorm.G[Choice](db).Create(ctx, &choice); err != nil {
			return err
		}
	}

	user1 := User{Token: uuid.NewString()}
	return gorm.G[User](db).Create(ctx, &user1)
}
