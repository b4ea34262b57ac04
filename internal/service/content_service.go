package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"content_manager/internal/access"
	"content_manager/internal/model"
	"content_manager/internal/repository"
)

var (
	ErrContentNotFound = errors.New("no content found")
	ErrEmptySearch     = errors.New("search term required")
)

// ContentService defines operations on content. Reads and mutations by id
// return ErrContentNotFound both for missing rows and for rows the
// principal may not see.
type ContentService interface {
	List(ctx context.Context, principal *model.User) ([]model.Content, error)
	Get(ctx context.Context, principal *model.User, id int) (*model.Content, error)
	Create(ctx context.Context, principal *model.User, req model.ContentRequest) (*model.Content, error)
	Update(ctx context.Context, principal *model.User, id int, req model.ContentRequest) (*model.Content, error)
	Delete(ctx context.Context, principal *model.User, id int) error
	Search(ctx context.Context, term string) ([]model.Content, error)
}

type contentService struct {
	repo repository.ContentRepository
}

// NewContentService creates a new ContentService
func NewContentService(repo repository.ContentRepository) ContentService {
	return &contentService{repo: repo}
}

func (s *contentService) List(ctx context.Context, principal *model.User) ([]model.Content, error) {
	contents, err := s.repo.FindAll(ctx, access.ScopeFor(principal, access.OpList))
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	return contents, nil
}

func (s *contentService) Get(ctx context.Context, principal *model.User, id int) (*model.Content, error) {
	if id <= 0 {
		return nil, ErrContentNotFound
	}
	scope := access.ScopeFor(principal, access.OpRead)
	content, err := s.repo.FindByID(ctx, id, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to find content by ID: %w", err)
	}
	if !scope.Allows(content) {
		return nil, ErrContentNotFound
	}
	return content, nil
}

func (s *contentService) Create(ctx context.Context, principal *model.User, req model.ContentRequest) (*model.Content, error) {
	owner, err := access.OwnerFor(principal)
	if err != nil {
		return nil, err
	}

	content := &model.Content{
		Title:   req.Title,
		Body:    req.Body,
		Summary: req.Summary,
		UserID:  &owner,
	}
	if err := s.repo.Create(ctx, content); err != nil {
		return nil, fmt.Errorf("failed to create content in repo: %w", err)
	}
	return content, nil
}

func (s *contentService) Update(ctx context.Context, principal *model.User, id int, req model.ContentRequest) (*model.Content, error) {
	if id <= 0 {
		return nil, ErrContentNotFound
	}

	content := &model.Content{ID: id, Title: req.Title, Body: req.Body, Summary: req.Summary}
	updated, err := s.repo.Update(ctx, content, access.ScopeFor(principal, access.OpUpdate))
	if err != nil {
		return nil, fmt.Errorf("failed to update content: %w", err)
	}
	if !updated {
		return nil, ErrContentNotFound
	}
	return content, nil
}

func (s *contentService) Delete(ctx context.Context, principal *model.User, id int) error {
	if id <= 0 {
		return ErrContentNotFound
	}
	deleted, err := s.repo.Delete(ctx, id, access.ScopeFor(principal, access.OpDelete))
	if err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}
	if !deleted {
		return ErrContentNotFound
	}
	return nil
}

// Search scans all content, regardless of owner, for a case-insensitive
// substring match in title, body or summary.
func (s *contentService) Search(ctx context.Context, term string) ([]model.Content, error) {
	if term == "" {
		return nil, ErrEmptySearch
	}

	// search is not owner-scoped
	contents, err := s.repo.FindAll(ctx, access.Scope{All: true})
	if err != nil {
		return nil, fmt.Errorf("failed to scan content: %w", err)
	}

	needle := strings.ToLower(term)
	result := []model.Content{}
	for _, c := range contents {
		if MatchesTerm(c, needle) {
			result = append(result, c)
		}
	}
	return result, nil
}

// MatchesTerm reports whether the lower-cased needle occurs in the title,
// body or summary of c. Fields are checked in that order and the first
// match wins.
func MatchesTerm(c model.Content, needle string) bool {
	for _, field := range []string{c.Title, c.Body, c.Summary} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
