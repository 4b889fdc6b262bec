package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/ubiqedu/marketing-agent-backend/internal/errors"
	"github.com/ubiqedu/marketing-agent-backend/internal/model"
	"github.com/ubiqedu/marketing-agent-backend/internal/service"
)

// MockCompleter returns a canned completion and counts calls.
type MockCompleter struct {
	mu       sync.Mutex
	calls    int
	response string
	err      error
}

func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

// MockPostRepo stores inserted posts in memory. failOn makes the insert of
// that content fail.
type MockPostRepo struct {
	mu     sync.Mutex
	posts  []model.SocialPost
	failOn string
}

func (m *MockPostRepo) List(userID string) ([]model.SocialPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.SocialPost{}, m.posts...), nil
}

func (m *MockPostRepo) Insert(userID, content string, source model.GenerationSource) (*model.SocialPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn != "" && content == m.failOn {
		return nil, fmt.Errorf("insert failed for %q", content)
	}
	p := model.SocialPost{
		ID:               uuid.NewString(),
		UserID:           userID,
		Content:          content,
		Status:           model.PostStatusDraft,
		GenerationSource: source,
		CreatedAt:        time.Now(),
	}
	m.posts = append(m.posts, p)
	return &p, nil
}

func (m *MockPostRepo) UpdateStatus(postID string, status model.PostStatus) error { return nil }
func (m *MockPostRepo) Delete(postID string) error                                { return nil }

func TestGenerateContentInsertsOnePostPerLine(t *testing.T) {
	llm := &MockCompleter{response: "🏀 Sports day is here! #GoTeam\n\n📚 Academic excellence on display. #Learning\n🎓 Congrats to our scholars! #Success\n"}
	repo := &MockPostRepo{}
	svc := &service.ContentService{LLM: llm, Posts: repo, Log: testLogger()}

	posts, err := svc.Generate(context.Background(), "user-1", "sports, academics", 3)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	for _, p := range posts {
		if p.Status != model.PostStatusDraft {
			t.Errorf("expected draft status, got %s", p.Status)
		}
		if p.GenerationSource != model.SourceAutomated {
			t.Errorf("expected automated source, got %s", p.GenerationSource)
		}
		if p.UserID != "user-1" {
			t.Errorf("expected owner user-1, got %s", p.UserID)
		}
	}
	// Output order matches completion line order.
	if !strings.Contains(posts[0].Content, "Sports day") {
		t.Errorf("expected first line first, got %q", posts[0].Content)
	}
}

func TestGenerateContentEmptyTopicsMakesNoNetworkCall(t *testing.T) {
	llm := &MockCompleter{response: "anything"}
	svc := &service.ContentService{LLM: llm, Posts: &MockPostRepo{}, Log: testLogger()}

	_, err := svc.Generate(context.Background(), "user-1", "   ", 3)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var validation *apperrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if llm.calls != 0 {
		t.Errorf("expected zero completion calls, got %d", llm.calls)
	}
}

func TestGenerateContentNotConfigured(t *testing.T) {
	svc := &service.ContentService{LLM: nil, Posts: &MockPostRepo{}, Log: testLogger()}

	_, err := svc.Generate(context.Background(), "user-1", "sports", 3)
	var notConfigured *apperrors.NotConfiguredError
	if !errors.As(err, &notConfigured) {
		t.Fatalf("expected NotConfiguredError, got %v", err)
	}
}

func TestGenerateContentCompletionFailure(t *testing.T) {
	llm := &MockCompleter{err: errors.New("rate limited")}
	svc := &service.ContentService{LLM: llm, Posts: &MockPostRepo{}, Log: testLogger()}

	if _, err := svc.Generate(context.Background(), "user-1", "sports", 3); err == nil {
		t.Errorf("expected error when completion fails")
	}
}

func TestGenerateContentBlankCompletion(t *testing.T) {
	llm := &MockCompleter{response: "\n\n   \n"}
	svc := &service.ContentService{LLM: llm, Posts: &MockPostRepo{}, Log: testLogger()}

	if _, err := svc.Generate(context.Background(), "user-1", "sports", 3); err == nil {
		t.Errorf("expected error when completion has no posts")
	}
}

func TestGenerateContentPartialFailureKeepsSuccesses(t *testing.T) {
	llm := &MockCompleter{response: "post one\npost two\npost three"}
	repo := &MockPostRepo{failOn: "post two"}
	svc := &service.ContentService{LLM: llm, Posts: repo, Log: testLogger()}

	if _, err := svc.Generate(context.Background(), "user-1", "sports", 3); err == nil {
		t.Fatalf("expected failure when one insert fails")
	}

	// The two successful inserts are retained, not rolled back.
	saved, _ := repo.List("user-1")
	if len(saved) != 2 {
		t.Errorf("expected 2 retained posts, got %d", len(saved))
	}
}

func TestSplitPostsTrimsAndDropsBlanks(t *testing.T) {
	posts := service.SplitPosts("  first  \n\n\t\nsecond\n   ")
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d: %v", len(posts), posts)
	}
	if posts[0] != "first" || posts[1] != "second" {
		t.Errorf("unexpected posts: %v", posts)
	}
}

func TestBuildPromptEmbedsTopicsAndCount(t *testing.T) {
	prompt := service.BuildPrompt("sports, academics", 5)
	if !strings.Contains(prompt, "sports, academics") {
		t.Errorf("expected topics in prompt")
	}
	if !strings.Contains(prompt, "Generate 5 diverse") {
		t.Errorf("expected post count in prompt")
	}
	if !strings.Contains(prompt, "one per line") {
		t.Errorf("expected line format instruction in prompt")
	}
}
