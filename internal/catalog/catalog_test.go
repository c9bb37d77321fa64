package catalog

import "testing"

func TestEveryCategoryHasThreeOrderedLevels(t *testing.T) {
	cats := Categories()
	if len(cats) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(cats))
	}

	for _, category := range cats {
		if len(category.Levels) != 3 {
			t.Fatalf("category %q has %d levels, want 3", category.ID, len(category.Levels))
		}
	}
}

func TestLevelIDsAreUniqueAcrossCatalog(t *testing.T) {
	seen := make(map[string]string)
	for _, category := range Categories() {
		for _, level := range category.Levels {
			if owner, exists := seen[level.ID]; exists {
				t.Fatalf("level id %q appears in both %q and %q", level.ID, owner, category.ID)
			}
			seen[level.ID] = category.ID
		}
	}
}

func TestQuizAnswersMatchAnOptionVerbatim(t *testing.T) {
	for _, category := range Categories() {
		for _, level := range category.Levels {
			if len(level.Quiz) == 0 {
				t.Fatalf("level %q has no quiz questions", level.ID)
			}
			for _, question := range level.Quiz {
				matches := 0
				for _, option := range question.Options {
					if option == question.CorrectAnswer {
						matches++
					}
				}
				if matches != 1 {
					t.Fatalf("level %q question %q: correct answer matches %d options, want exactly 1",
						level.ID, question.Question, matches)
				}
			}
		}
	}
}

func TestFindLevelReturnsOwningCategoryAndIndex(t *testing.T) {
	category, level, index, ok := FindLevel("yoga-2")
	if !ok {
		t.Fatal("expected yoga-2 to be found")
	}
	if category.ID != "yoga" || level.ID != "yoga-2" || index != 1 {
		t.Fatalf("unexpected lookup result: category=%q level=%q index=%d", category.ID, level.ID, index)
	}

	if _, _, _, ok := FindLevel("nope-9"); ok {
		t.Fatal("expected unknown level to be not found")
	}
}

func TestCategoryByID(t *testing.T) {
	if _, ok := CategoryByID("figure-management"); !ok {
		t.Fatal("expected figure-management to exist")
	}
	if _, ok := CategoryByID("crossfit"); ok {
		t.Fatal("expected crossfit to be unknown")
	}
}

func TestConsultantLookup(t *testing.T) {
	if len(Consultants()) != 4 {
		t.Fatalf("expected 4 consultants, got %d", len(Consultants()))
	}
	consultant, ok := ConsultantByID("c3")
	if !ok || consultant.Specialty != "Yoga & Meditation" {
		t.Fatalf("unexpected consultant: %+v ok=%v", consultant, ok)
	}
}
