package db

import (
	"time"
)

// QuestionType enumerates the supported question kinds.
type QuestionType int

const (
	QuestionTypeText            QuestionType = 1
	QuestionTypeSingleChoice    QuestionType = 2
	QuestionTypeMultipleChoices QuestionType = 3
)

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	return t == QuestionTypeText || t == QuestionTypeSingleChoice || t == QuestionTypeMultipleChoices
}

// ChoiceBased reports whether questions of this type carry choices.
func (t QuestionType) ChoiceBased() bool {
	return t == QuestionTypeSingleChoice || t == QuestionTypeMultipleChoices
}

// Models use explicit primary keys and hard deletes instead of gorm.Model.
// Soft deletes would keep dead rows inside the composite unique indexes and
// stop the ON DELETE CASCADE constraints from firing; the store constraints
// must stay authoritative for racing submissions.

type Poll struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:20"`
	Description string
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Questions   []Question `gorm:"constraint:OnDelete:CASCADE"`
}

type Question struct {
	ID        uint   `gorm:"primaryKey"`
	PollID    uint   `gorm:"not null;uniqueIndex:idx_questions_poll_text"`
	Text      string `gorm:"size:256;uniqueIndex:idx_questions_poll_text"`
	Type      QuestionType
	CreatedAt time.Time
	UpdatedAt time.Time
	Choices   []Choice `gorm:"constraint:OnDelete:CASCADE"`
}

type Choice struct {
	ID         uint   `gorm:"primaryKey"`
	QuestionID uint   `gorm:"not null;uniqueIndex:idx_choices_question_text"`
	Text       string `gorm:"size:30;uniqueIndex:idx_choices_question_text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// User is an anonymous identity. The opaque bearer token is issued at
// creation time and is the only thing a responder ever presents.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"size:64;unique;not null"`
	CreatedAt time.Time
}

type TextResponse struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"not null;uniqueIndex:idx_text_responses_user_question"`
	QuestionID uint `gorm:"not null;uniqueIndex:idx_text_responses_user_question"`
	Text       string
	CreatedAt  time.Time
	User       User     `gorm:"constraint:OnDelete:CASCADE"`
	Question   Question `gorm:"constraint:OnDelete:CASCADE"`
}

// SingleChoiceResponse stores the question alongside the choice. The question
// is always derived from the choice at write time; the extra column lets the
// store enforce one response per (user, question).
type SingleChoiceResponse struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"not null;uniqueIndex:idx_single_responses_user_question;uniqueIndex:idx_single_responses_user_choice"`
	ChoiceID   uint `gorm:"not null;uniqueIndex:idx_single_responses_user_choice"`
	QuestionID uint `gorm:"not null;uniqueIndex:idx_single_responses_user_question"`
	CreatedAt  time.Time
	User       User     `gorm:"constraint:OnDelete:CASCADE"`
	Choice     Choice   `gorm:"constraint:OnDelete:CASCADE"`
	Question   Question `gorm:"constraint:OnDelete:CASCADE"`
}

// MultipleChoicesResponse holds one row per selected choice.
type MultipleChoicesResponse struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_multiple_responses_user_choice"`
	ChoiceID  uint `gorm:"not null;uniqueIndex:idx_multiple_responses_user_choice"`
	CreatedAt time.Time
	User      User   `gorm:"constraint:OnDelete:CASCADE"`
	Choice    Choice `gorm:"constraint:OnDelete:CASCADE"`
}
