// Package catalog provides the static subject lists per class level and stream.
package catalog

import (
	"github.com/nstapp/content-library/internal/models"
	"github.com/samber/lo"
)

var juniorSubjects = []models.Subject{
	{ID: "math", Name: "Mathematics", Color: "bg-blue-50 text-blue-600"},
	{ID: "science", Name: "Science", Color: "bg-green-50 text-green-600"},
	{ID: "sst", Name: "Social Science", Color: "bg-orange-50 text-orange-600"},
	{ID: "english", Name: "English", Color: "bg-purple-50 text-purple-600"},
	{ID: "hindi", Name: "Hindi", Color: "bg-red-50 text-red-600"},
}

var seniorSubjects = map[string][]models.Subject{
	"Science": {
		{ID: "physics", Name: "Physics", Color: "bg-blue-50 text-blue-600"},
		{ID: "chemistry", Name: "Chemistry", Color: "bg-green-50 text-green-600"},
		{ID: "math", Name: "Mathematics", Color: "bg-indigo-50 text-indigo-600"},
		{ID: "biology", Name: "Biology", Color: "bg-emerald-50 text-emerald-600"},
		{ID: "english", Name: "English", Color: "bg-purple-50 text-purple-600"},
	},
	"Commerce": {
		{ID: "accountancy", Name: "Accountancy", Color: "bg-amber-50 text-amber-600"},
		{ID: "business", Name: "Business Studies", Color: "bg-teal-50 text-teal-600"},
		{ID: "economics", Name: "Economics", Color: "bg-cyan-50 text-cyan-600"},
		{ID: "english", Name: "English", Color: "bg-purple-50 text-purple-600"},
	},
	"Arts": {
		{ID: "history", Name: "History", Color: "bg-orange-50 text-orange-600"},
		{ID: "geography", Name: "Geography", Color: "bg-lime-50 text-lime-600"},
		{ID: "polity", Name: "Political Science", Color: "bg-rose-50 text-rose-600"},
		{ID: "english", Name: "English", Color: "bg-purple-50 text-purple-600"},
	},
}

// Subjects returns the subject list for a class level and stream.
//
// Streams only matter for classes 11 and 12; an unknown senior stream falls back to Science.
// The returned slice is a copy.
func Subjects(classLevel, stream string) []models.Subject {
	list := juniorSubjects
	if classLevel == "11" || classLevel == "12" {
		var ok bool
		if list, ok = seniorSubjects[stream]; !ok {
			list = seniorSubjects["Science"]
		}
	}
	return append([]models.Subject(nil), list...)
}

// Find returns the subject with the given id from the list for a class level and stream
func Find(classLevel, stream, subjectID string) (models.Subject, bool) {
	return lo.Find(Subjects(classLevel, stream), func(s models.Subject) bool {
		return s.ID == subjectID
	})
}
