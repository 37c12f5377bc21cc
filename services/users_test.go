package services

import (
	"testing"

	"algoquiz/models"
)

func TestRegisterUser(t *testing.T) {
	db := newTestDB(t)

	user, err := RegisterUser(db, "abc123")
	if err != nil {
		t.Fatalf("RegisterUser(abc123) failed: %v", err)
	}
	if user.Username != "abc123" {
		t.Errorf("username = %q, want %q", user.Username, "abc123")
	}
	if user.Points != 0 {
		t.Errorf("points = %d, want 0", user.Points)
	}
	if user.Rank != models.RankBronze {
		t.Errorf("rank = %q, want %q", user.Rank, models.RankBronze)
	}
	if user.ProfilePhoto != models.DefaultProfilePhoto {
		t.Errorf("profile_photo = %q, want placeholder", user.ProfilePhoto)
	}
	if len(user.CompletedQuizzes) != 0 {
		t.Errorf("completed_quizzes = %v, want empty", user.CompletedQuizzes)
	}
}

func TestRegisterUserTrimsWhitespace(t *testing.T) {
	db := newTestDB(t)

	user, err := RegisterUser(db, "  player42  ")
	if err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}
	if user.Username != "player42" {
		t.Errorf("username = %q, want %q", user.Username, "player42")
	}
}

func TestRegisterUserRejections(t *testing.T) {
	db := newTestDB(t)

	cases := []struct {
		name     string
		username string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"no digit", "abcdef"},
		{"too short", "ab1"},
		{"too long", "a1bcdefghijklmnopqrstu"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RegisterUser(db, tc.username)
			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if ve.Field != "username" {
				t.Errorf("field = %q, want username", ve.Field)
			}
		})
	}
}

func TestRegisterUserCaseInsensitiveCollision(t *testing.T) {
	db := newTestDB(t)

	if _, err := RegisterUser(db, "User123"); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	_, err := RegisterUser(db, "user123")
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected validation error for case-insensitive collision, got %v", err)
	}

	// Exact-case duplicate is rejected the same way.
	_, err = RegisterUser(db, "User123")
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected validation error for exact duplicate, got %v", err)
	}
}

func TestFindUserByUsername(t *testing.T) {
	db := newTestDB(t)

	created, err := RegisterUser(db, "Player99")
	if err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}

	// Lookup is case-insensitive and trims whitespace.
	for _, submitted := range []string{"Player99", "player99", "PLAYER99", "  player99 "} {
		user, err := FindUserByUsername(db, submitted)
		if err != nil {
			t.Fatalf("FindUserByUsername(%q) failed: %v", submitted, err)
		}
		if user.ID != created.ID {
			t.Errorf("FindUserByUsername(%q) returned user %d, want %d", submitted, user.ID, created.ID)
		}
		if user.Username != "Player99" {
			t.Errorf("stored casing = %q, want %q", user.Username, "Player99")
		}
	}
}

func TestFindUserByUsernameNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := FindUserByUsername(db, "ghost42")
	if !IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveUserRecomputesRank(t *testing.T) {
	db := newTestDB(t)

	user, err := RegisterUser(db, "ranker1")
	if err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}

	// A client-supplied rank must be overwritten by the derived value.
	user.Points = 1500
	user.Rank = models.RankGold
	if err := SaveUser(db, user); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}
	if user.Rank != models.RankSilver {
		t.Errorf("rank = %q, want %q", user.Rank, models.RankSilver)
	}

	reloaded, err := GetUser(db, user.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if reloaded.Rank != models.RankSilver {
		t.Errorf("persisted rank = %q, want %q", reloaded.Rank, models.RankSilver)
	}

	reloaded.Points = 3000
	if err := SaveUser(db, reloaded); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}
	if reloaded.Rank != models.RankGold {
		t.Errorf("rank = %q, want %q", reloaded.Rank, models.RankGold)
	}
}

func TestCompleteQuiz(t *testing.T) {
	db := newTestDB(t)

	user, err := RegisterUser(db, "solver7")
	if err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}

	updated, err := CompleteQuiz(db, user.ID, 5, 1200)
	if err != nil {
		t.Fatalf("CompleteQuiz failed: %v", err)
	}
	if !updated.CompletedQuizzes.Contains(5) {
		t.Error("quiz 5 missing from completed set")
	}
	if updated.Points != 1200 {
		t.Errorf("points = %d, want 1200", updated.Points)
	}
	if updated.Rank != models.RankSilver {
		t.Errorf("rank = %q, want %q", updated.Rank, models.RankSilver)
	}

	// Completing the same quiz again awards nothing.
	again, err := CompleteQuiz(db, user.ID, 5, 1200)
	if err != nil {
		t.Fatalf("repeat CompleteQuiz failed: %v", err)
	}
	if again.Points != 1200 {
		t.Errorf("points after repeat = %d, want 1200", again.Points)
	}
	if len(again.CompletedQuizzes) != 1 {
		t.Errorf("completed set size = %d, want 1", len(again.CompletedQuizzes))
	}
}

func TestCompleteQuizUnknownUser(t *testing.T) {
	db := newTestDB(t)

	_, err := CompleteQuiz(db, 999, 1, 100)
	if !IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
