package library

import (
	"fmt"

	"github.com/nstapp/content-library/internal/models"
)

const noExplanation = "No explanation provided."

// quiz is the MCQ practice sub-state: one question at a time, then a result.
type quiz struct {
	chapter  models.Chapter
	items    []models.MCQItem
	index    int
	score    int
	selected *int
	finished bool
}

func newQuiz(chapter models.Chapter, items []models.MCQItem) *quiz {
	return &quiz{
		chapter: chapter,
		items:   items,
	}
}

// answer locks in option for the current question. Repeated answers are ignored.
func (q *quiz) answer(option int) error {
	if q.finished {
		return fmt.Errorf("%w: quiz already finished", models.ErrInvalidAction)
	}

	item := q.items[q.index]
	if option < 0 || option >= len(item.Options) {
		return fmt.Errorf("%w: option %d out of range", models.ErrInvalidAction, option)
	}
	if q.selected != nil {
		return nil
	}

	q.selected = &option
	if option == item.CorrectAnswer {
		q.score++
	}
	return nil
}

func (q *quiz) next() error {
	if q.finished {
		return fmt.Errorf("%w: quiz already finished", models.ErrInvalidAction)
	}
	if q.selected == nil {
		return fmt.Errorf("%w: current question not answered", models.ErrInvalidAction)
	}

	q.selected = nil
	q.index++
	if q.index >= len(q.items) {
		q.finished = true
	}
	return nil
}

func (q *quiz) view() *models.QuizView {
	v := &models.QuizView{
		Index:    q.index,
		Total:    len(q.items),
		Score:    q.score,
		Finished: q.finished,
	}
	if q.finished {
		return v
	}

	item := q.items[q.index]
	v.Question = item.Question
	v.Options = append([]string(nil), item.Options...)
	v.NextLabel = "Next Question"
	if q.index == len(q.items)-1 {
		v.NextLabel = "Finish"
	}

	if q.selected != nil {
		selected, correct := *q.selected, item.CorrectAnswer
		v.Answered = true
		v.SelectedOption = &selected
		v.CorrectAnswer = &correct
		v.NextEnabled = true
		v.Explanation = item.Explanation
		if v.Explanation == "" {
			v.Explanation = noExplanation
		}
	}
	return v
}
