package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"algoquiz/database"
	"algoquiz/middleware"
	"algoquiz/models"
	"algoquiz/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp wires the public routes against a fresh in-memory store.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret-at-least-32-characters-long")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	database.SetDB(db)
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	app := fiber.New()
	app.Post("/users/register", Register)
	app.Post("/users/login", Login)

	userGroup := app.Group("/users")
	userGroup.Use(middleware.AuthMiddleware)
	userGroup.Get("/me", GetCurrentUser)
	userGroup.Post("/me/complete", CompleteQuiz)

	app.Get("/quizzes/list", ListQuizzes)
	app.Get("/quizzes/:id", GetQuiz)
	app.Post("/feedback", Vote)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	payload := map[string]interface{}{}
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &payload); err != nil {
			t.Fatalf("failed to decode response %q: %v", raw, err)
		}
	} else if len(raw) > 0 {
		payload["_raw"] = string(raw)
	}

	return resp.StatusCode, payload
}

func TestRegisterAndLoginFlow(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/users/register",
		map[string]string{"username": "GoPlayer1"}, "")
	if status != http.StatusCreated {
		t.Fatalf("register status = %d, want 201 (body: %v)", status, body)
	}
	for _, field := range []string{"message", "access", "refresh", "username", "profile_photo", "completed_quizzes", "rank"} {
		if _, ok := body[field]; !ok {
			t.Errorf("register response missing %q", field)
		}
	}
	if body["username"] != "GoPlayer1" {
		t.Errorf("username = %v, want GoPlayer1", body["username"])
	}
	if body["rank"] != models.RankBronze {
		t.Errorf("rank = %v, want Bronze", body["rank"])
	}
	if body["points"] != float64(0) {
		t.Errorf("points = %v, want 0", body["points"])
	}

	// Login with a different case resolves to the same account.
	status, body = doJSON(t, app, http.MethodPost, "/users/login",
		map[string]string{"username": "goplayer1"}, "")
	if status != http.StatusOK {
		t.Fatalf("login status = %d, want 200 (body: %v)", status, body)
	}
	if body["username"] != "GoPlayer1" {
		t.Errorf("login username = %v, want stored casing GoPlayer1", body["username"])
	}

	token, _ := body["access"].(string)
	if token == "" {
		t.Fatal("login response missing access token")
	}

	// The access token works against the authenticated surface.
	status, body = doJSON(t, app, http.MethodGet, "/users/me", nil, token)
	if status != http.StatusOK {
		t.Fatalf("/users/me status = %d, want 200 (body: %v)", status, body)
	}
	if body["username"] != "GoPlayer1" {
		t.Errorf("/users/me username = %v, want GoPlayer1", body["username"])
	}
}

func TestRegisterValidationErrors(t *testing.T) {
	app := newTestApp(t)

	cases := []string{"abcdef", "ab1", ""}
	for _, username := range cases {
		status, body := doJSON(t, app, http.MethodPost, "/users/register",
			map[string]string{"username": username}, "")
		if status != http.StatusBadRequest {
			t.Errorf("register(%q) status = %d, want 400", username, status)
		}
		if _, ok := body["username"]; !ok {
			t.Errorf("register(%q) response missing username field errors: %v", username, body)
		}
	}

	// Case-insensitive collision on the second attempt.
	if status, _ := doJSON(t, app, http.MethodPost, "/users/register",
		map[string]string{"username": "User123"}, ""); status != http.StatusCreated {
		t.Fatalf("first register status = %d, want 201", status)
	}
	status, _ := doJSON(t, app, http.MethodPost, "/users/register",
		map[string]string{"username": "user123"}, "")
	if status != http.StatusBadRequest {
		t.Errorf("colliding register status = %d, want 400", status)
	}
}

func TestLoginUnknownUsername(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/users/login",
		map[string]string{"username": "Nobody9"}, "")
	if status != http.StatusNotFound {
		t.Fatalf("login status = %d, want 404", status)
	}

	msgs, ok := body["username"].([]interface{})
	if !ok || len(msgs) == 0 {
		t.Fatalf("expected username field errors, got %v", body)
	}
	if msg, _ := msgs[0].(string); !strings.Contains(msg, "nobody9") {
		t.Errorf("error message %q does not name the submitted username", msg)
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodGet, "/users/me", nil, "")
	if status != http.StatusUnauthorized {
		t.Errorf("/users/me without token status = %d, want 401", status)
	}
}

func TestQuizDetailNotFound(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/quizzes/999", nil, "")
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if body["detail"] != "Quiz not found" {
		t.Errorf("detail = %v, want 'Quiz not found'", body["detail"])
	}
}

func TestQuizListAndDetail(t *testing.T) {
	app := newTestApp(t)
	db := database.GetDB()

	ids := make([]uint, 10)
	for i := 0; i < 10; i++ {
		q := models.Question{
			Text:         fmt.Sprintf("Question %d", i+1),
			Options:      models.StringList{"a", "b", "c", "d"},
			CorrectIndex: 1,
			Explanation:  "because",
		}
		if err := services.SaveQuestion(db, &q); err != nil {
			t.Fatalf("failed to create question: %v", err)
		}
		ids[i] = q.ID
	}

	quiz := &models.Quiz{
		Title:      "Stacks and Queues",
		Category:   "Data Structures",
		Difficulty: models.DifficultyEasy,
		Image:      "quiz_images/stacks.png",
	}
	// Link in reverse so detail ordering is visibly derived from sort
	// order, not insertion order.
	if err := db.Create(quiz).Error; err != nil {
		t.Fatalf("failed to create quiz: %v", err)
	}
	for i := len(ids) - 1; i >= 0; i-- {
		link := models.QuizQuestion{QuizID: quiz.ID, QuestionID: ids[i], Order: i + 1}
		if err := db.Create(&link).Error; err != nil {
			t.Fatalf("failed to create link: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/quizzes/list", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	defer resp.Body.Close()

	var list []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list size = %d, want 1", len(list))
	}
	if list[0]["question_count"] != float64(models.QuestionsPerQuiz) {
		t.Errorf("question_count = %v, want %d", list[0]["question_count"], models.QuestionsPerQuiz)
	}
	if list[0]["time_limit_minutes"] != float64(models.TimeLimitMinutes) {
		t.Errorf("time_limit_minutes = %v, want %d", list[0]["time_limit_minutes"], models.TimeLimitMinutes)
	}
	if _, ok := list[0]["questions"]; ok {
		t.Error("list payload must not embed questions")
	}

	status, detail := doJSON(t, app, http.MethodGet, fmt.Sprintf("/quizzes/%d", quiz.ID), nil, "")
	if status != http.StatusOK {
		t.Fatalf("detail status = %d, want 200", status)
	}

	questions, ok := detail["questions"].([]interface{})
	if !ok {
		t.Fatalf("detail missing questions array: %v", detail)
	}
	if len(questions) != 10 {
		t.Fatalf("detail question count = %d, want 10", len(questions))
	}
	for i, raw := range questions {
		q := raw.(map[string]interface{})
		if q["question"] != fmt.Sprintf("Question %d", i+1) {
			t.Errorf("questions[%d] = %v, want Question %d (ascending order)", i, q["question"], i+1)
		}
		if q["correct_index"] != float64(1) {
			t.Errorf("questions[%d].correct_index = %v, want 1", i, q["correct_index"])
		}
		if q["image"] != nil {
			t.Errorf("questions[%d].image = %v, want null for unset image", i, q["image"])
		}
	}
}

func TestFeedbackVotes(t *testing.T) {
	app := newTestApp(t)
	db := database.GetDB()

	for _, vote := range []string{"like", "like", "dislike"} {
		status, body := doJSON(t, app, http.MethodPost, "/feedback",
			map[string]string{"vote": vote}, "")
		if status != http.StatusOK {
			t.Fatalf("vote status = %d, want 200", status)
		}
		if body["status"] != "vote recorded" {
			t.Errorf("status field = %v, want 'vote recorded'", body["status"])
		}
	}

	// Unknown kind and malformed body still return 200 and change nothing.
	if status, _ := doJSON(t, app, http.MethodPost, "/feedback",
		map[string]string{"vote": "meh"}, ""); status != http.StatusOK {
		t.Errorf("unknown vote status = %d, want 200", status)
	}

	req := httptest.NewRequest(http.MethodPost, "/feedback", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("malformed vote request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("malformed vote status = %d, want 200", resp.StatusCode)
	}

	feedback, err := services.GetFeedback(db)
	if err != nil {
		t.Fatalf("GetFeedback failed: %v", err)
	}
	if feedback.Likes != 2 || feedback.Dislikes != 1 {
		t.Errorf("counter = %d/%d, want 2/1", feedback.Likes, feedback.Dislikes)
	}
}

func TestCompleteQuizEndpoint(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/users/register",
		map[string]string{"username": "finisher5"}, "")
	if status != http.StatusCreated {
		t.Fatalf("register status = %d, want 201", status)
	}
	token, _ := body["access"].(string)

	status, body = doJSON(t, app, http.MethodPost, "/users/me/complete",
		map[string]interface{}{"quiz_id": 3, "points": 1000}, token)
	if status != http.StatusOK {
		t.Fatalf("complete status = %d, want 200 (body: %v)", status, body)
	}
	if body["points"] != float64(1000) {
		t.Errorf("points = %v, want 1000", body["points"])
	}
	if body["rank"] != models.RankSilver {
		t.Errorf("rank = %v, want Silver", body["rank"])
	}

	completed, ok := body["completed_quizzes"].([]interface{})
	if !ok || len(completed) != 1 {
		t.Fatalf("completed_quizzes = %v, want one entry", body["completed_quizzes"])
	}
	if completed[0] != float64(3) {
		t.Errorf("completed_quizzes[0] = %v, want 3", completed[0])
	}
}
