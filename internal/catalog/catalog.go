// Package catalog holds the fixed fitness content: categories, their
// levels and quizzes, and the consultant roster. Loaded once, never
// mutated at runtime.
package catalog

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

type Level struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	VideoURL    string         `json:"video_url"`
	AvatarImage string         `json:"avatar_image"`
	Quiz        []QuizQuestion `json:"quiz"`
}

type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Color       string  `json:"color"`
	Icon        string  `json:"icon"`
	Levels      []Level `json:"levels"`
}

type Consultant struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Specialty  string  `json:"specialty"`
	Experience string  `json:"experience"`
	Rating     float64 `json:"rating"`
	Image      string  `json:"image"`
	Bio        string  `json:"bio"`
}

// Categories returns the full category catalog in display order.
func Categories() []Category {
	return categories
}

// Consultants returns the consultant roster.
func Consultants() []Consultant {
	return consultants
}

// CategoryByID looks up a category; ok is false for unknown ids.
func CategoryByID(id string) (Category, bool) {
	for _, category := range categories {
		if category.ID == id {
			return category, true
		}
	}
	return Category{}, false
}

// FindLevel resolves a level id to its owning category, the level itself,
// and the level's ordinal index within the category.
func FindLevel(levelID string) (Category, Level, int, bool) {
	for _, category := range categories {
		for i, level := range category.Levels {
			if level.ID == levelID {
				return category, level, i, true
			}
		}
	}
	return Category{}, Level{}, 0, false
}

// ConsultantByID looks up a consultant; ok is false for unknown ids.
func ConsultantByID(id string) (Consultant, bool) {
	for _, consultant := range consultants {
		if consultant.ID == id {
			return consultant, true
		}
	}
	return Consultant{}, false
}
