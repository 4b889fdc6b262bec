// internal/service/content_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/ubiqedu/marketing-agent-backend/internal/errors"
	"github.com/ubiqedu/marketing-agent-backend/internal/llm"
	"github.com/ubiqedu/marketing-agent-backend/internal/metrics"
	"github.com/ubiqedu/marketing-agent-backend/internal/model"
	"github.com/ubiqedu/marketing-agent-backend/internal/repository"
)

// DefaultPostCount is used when the caller does not ask for a specific
// number of posts.
const DefaultPostCount = 3

type ContentService struct {
	LLM   llm.Completer
	Posts repository.PostRepositoryInterface
	Log   *logrus.Logger
}

// BuildPrompt embeds topics and postCount into the fixed instructional
// template for the completion endpoint.
func BuildPrompt(topics string, postCount int) string {
	return fmt.Sprintf(`You are a professional educational marketing content creator. Generate %d diverse, engaging social media posts for an educational institution.

Topics/Keywords to focus on: %s

Requirements:
- Each post should be 1-2 sentences maximum
- Include relevant emojis
- Add 2-3 relevant hashtags at the end
- Make posts suitable for platforms like LinkedIn, Facebook, or Twitter
- Focus on educational achievements, community engagement, student success, or learning opportunities
- Vary the tone and style between posts
- Make them inspiring and professional

Return only the posts, one per line, nothing else.`, postCount, topics)
}

// SplitPosts breaks the raw completion text into candidate post strings:
// one per line, trimmed, blanks dropped.
func SplitPosts(text string) []string {
	lines := strings.Split(text, "\n")
	posts := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		posts = append(posts, line)
	}
	return posts
}

// Generate runs the content pipeline: validate topics, call the completion
// endpoint, split the output into posts, and insert them all as drafts. The
// inserts run concurrently; any single failure fails the whole call, but
// posts already written stay written.
func (s *ContentService) Generate(ctx context.Context, userID, topics string, postCount int) ([]model.SocialPost, error) {
	metrics.GenerationRequests.WithLabelValues("content").Inc()

	if strings.TrimSpace(topics) == "" {
		metrics.GenerationFailures.WithLabelValues("content", "validation").Inc()
		return nil, apperrors.NewValidation("topics", "topics are required for content generation")
	}
	if s.LLM == nil {
		metrics.GenerationFailures.WithLabelValues("content", "not_configured").Inc()
		return nil, apperrors.NewNotConfigured("content generation endpoint")
	}
	if postCount < 1 {
		postCount = DefaultPostCount
	}

	s.Log.WithFields(logrus.Fields{"topics": topics, "post_count": postCount}).Info("generating content")

	text, err := s.LLM.Complete(ctx, BuildPrompt(topics, postCount))
	if err != nil {
		metrics.GenerationFailures.WithLabelValues("content", "transport").Inc()
		s.Log.WithError(err).Error("completion request failed")
		return nil, fmt.Errorf("content generation failed: %w", err)
	}

	candidates := SplitPosts(text)
	if len(candidates) == 0 {
		metrics.GenerationFailures.WithLabelValues("content", "response_shape").Inc()
		return nil, fmt.Errorf("content generation failed: completion contained no posts")
	}

	posts := make([]model.SocialPost, len(candidates))
	var g errgroup.Group
	for i, content := range candidates {
		i, content := i, content
		g.Go(func() error {
			p, err := s.Posts.Insert(userID, content, model.SourceAutomated)
			if err != nil {
				return err
			}
			posts[i] = *p
			metrics.PostsCreated.Inc()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		metrics.GenerationFailures.WithLabelValues("content", "storage").Inc()
		s.Log.WithError(err).Error("failed to save generated posts")
		return nil, fmt.Errorf("failed to save generated posts: %w", err)
	}

	s.Log.WithField("count", len(posts)).Info("content generation complete")
	return posts, nil
}
