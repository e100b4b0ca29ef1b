package app

import (
	"fmt"
	"testing"

	"jeoparty-service/internal/config"
	"jeoparty-service/internal/domain"
)

func startSession(t *testing.T, cats []domain.Category, seed int64) *Session {
	t.Helper()
	session := NewManualSession("sampling", config.DefaultRules(), seed)
	ids := make([]string, len(cats))
	for i, cat := range cats {
		ids[i] = cat.ID
	}
	if err := session.Configure(2, nil, ids); err != nil {
		t.Fatalf("configure: %v", err)
	}
	if err := session.Start(cats); err != nil {
		t.Fatalf("start: %v", err)
	}
	return session
}

func TestModifierAssignmentPerCategory(t *testing.T) {
	var cats []domain.Category
	for c := 0; c < 4; c++ {
		cat := domain.Category{ID: fmt.Sprintf("cat%d", c), Title: "Cat"}
		for i, value := range []int{100, 200, 300, 400, 500} {
			cat.Questions = append(cat.Questions, domain.Question{
				ID:      fmt.Sprintf("cat%d-q%d", c, i+1),
				Value:   value,
				Answer:  "a",
				Options: []string{"a", "b", "c", "d"},
			})
		}
		cats = append(cats, cat)
	}

	for seed := int64(0); seed < 20; seed++ {
		session := startSession(t, cats, seed)

		if len(session.dailyDoubles) != len(cats) {
			t.Fatalf("seed %d: expected one daily double per category, got %d", seed, len(session.dailyDoubles))
		}
		if len(session.mandatories) != len(cats) {
			t.Fatalf("seed %d: expected one mandatory per category, got %d", seed, len(session.mandatories))
		}
		for id := range session.dailyDoubles {
			if session.mandatories[id] {
				t.Fatalf("seed %d: daily double and mandatory sets overlap at %s", seed, id)
			}
		}

		// Exactly one of each per category.
		perCatDD := make(map[string]int)
		perCatMQ := make(map[string]int)
		for _, cat := range session.categories {
			for _, q := range cat.Questions {
				if session.dailyDoubles[q.ID] {
					perCatDD[cat.ID]++
				}
				if session.mandatories[q.ID] {
					perCatMQ[cat.ID]++
				}
			}
		}
		for _, cat := range cats {
			if perCatDD[cat.ID] != 1 || perCatMQ[cat.ID] != 1 {
				t.Fatalf("seed %d: category %s has dd=%d mq=%d", seed, cat.ID, perCatDD[cat.ID], perCatMQ[cat.ID])
			}
		}
	}
}

func TestSingleQuestionCategoryGetsDailyDoubleOnly(t *testing.T) {
	cats := []domain.Category{{
		ID:    "solo",
		Title: "Solo",
		Questions: []domain.Question{
			{ID: "solo-q1", Value: 100, Answer: "a", Options: []string{"a", "b", "c", "d"}},
		},
	}}
	session := startSession(t, cats, 1)

	if !session.dailyDoubles["solo-q1"] {
		t.Fatalf("expected the only question to be the daily double")
	}
	if len(session.mandatories) != 0 {
		t.Fatalf("expected no mandatory question, got %v", session.mandatories)
	}
}

func TestTierSamplingPicksOnePerTier(t *testing.T) {
	// Two candidates at 100 and 300, none at 400; the sampled category must
	// hold one question for each populated tier.
	cat := domain.Category{ID: "c1", Title: "C1", Questions: []domain.Question{
		{ID: "a1", Value: 100, Answer: "a", Options: []string{"a", "b"}},
		{ID: "a2", Value: 100, Answer: "a", Options: []string{"a", "b"}},
		{ID: "b1", Value: 200, Answer: "a", Options: []string{"a", "b"}},
		{ID: "d1", Value: 300, Answer: "a", Options: []string{"a", "b"}},
		{ID: "d2", Value: 300, Answer: "a", Options: []string{"a", "b"}},
		{ID: "e1", Value: 500, Answer: "a", Options: []string{"a", "b"}},
	}}
	session := startSession(t, []domain.Category{cat}, 2)

	sampled := session.categories[0].Questions
	if len(sampled) != 4 {
		t.Fatalf("expected 4 sampled questions (tier 400 empty), got %d", len(sampled))
	}
	values := make(map[int]int)
	for _, q := range sampled {
		values[q.Value]++
		if q.CategoryID != "c1" {
			t.Fatalf("expected sampled question tagged with category, got %q", q.CategoryID)
		}
	}
	for _, tier := range []int{100, 200, 300, 500} {
		if values[tier] != 1 {
			t.Fatalf("expected exactly one question at tier %d, got %d", tier, values[tier])
		}
	}
}

func TestEmptyCategoriesAreDropped(t *testing.T) {
	cats := []domain.Category{
		{ID: "empty", Title: "Empty"},
		{ID: "odd", Title: "Odd values", Questions: []domain.Question{
			{ID: "x1", Value: 250, Answer: "a", Options: []string{"a", "b"}},
		}},
		fiveTier("ok"),
	}
	session := startSession(t, cats, 3)

	if len(session.categories) != 1 || session.categories[0].ID != "ok" {
		t.Fatalf("expected only the populated category on the board, got %+v", session.categories)
	}
}

func TestStartWithNoUsableCategoriesFails(t *testing.T) {
	session := NewManualSession("sampling", config.DefaultRules(), 4)
	if err := session.Configure(2, nil, []string{"empty"}); err != nil {
		t.Fatalf("configure: %v", err)
	}
	err := session.Start([]domain.Category{{ID: "empty", Title: "Empty"}})
	if err != domain.ErrCatalogEmpty {
		t.Fatalf("expected ErrCatalogEmpty, got %v", err)
	}
}

func fiveTier(id string) domain.Category {
	cat := domain.Category{ID: id, Title: id}
	for i, value := range []int{100, 200, 300, 400, 500} {
		cat.Questions = append(cat.Questions, domain.Question{
			ID:      fmt.Sprintf("%s-%d", id, i+1),
			Value:   value,
			Answer:  "a",
			Options: []string{"a", "b", "c", "d"},
		})
	}
	return cat
}
