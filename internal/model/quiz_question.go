package model

// QuizQuestion links a quiz to one of its questions. Questions are shared across
// quizzes; Position fixes the order they are presented in.
type QuizQuestion struct {
	QuizID     uint `json:"quiz_id" gorm:"primaryKey"`
	QuestionID uint `json:"question_id" gorm:"primaryKey"`
	Position   int  `json:"position" gorm:"not null;default:0"`
}
