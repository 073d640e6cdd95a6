package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	apperrors "expense-tracker/internal/errors"
	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"
	"expense-tracker/internal/tags"

	"github.com/google/uuid"
)

var (
	// ErrTagNotFound indicates the named tag is not in the user's vocabulary
	ErrTagNotFound = errors.New(apperrors.GetErrorMessage(apperrors.TagNotFound))
	// ErrTagDuplicate indicates the target tag name is already taken
	ErrTagDuplicate = errors.New(apperrors.GetErrorMessage(apperrors.TagDuplicate))
	// ErrNoValidTags indicates no supplied tag survived canonicalization
	ErrNoValidTags = errors.New(apperrors.GetErrorMessage(apperrors.TagNoValidTags))
	// ErrEmptyTagSearch indicates a blank search fragment
	ErrEmptyTagSearch = errors.New(apperrors.GetErrorMessage(apperrors.TagEmptySearch))
)

// TagService manages the per-user tag vocabulary
type TagService struct {
	userRepo   repositories.UserRepositoryInterface
	recordRepo repositories.RecordRepositoryInterface
	logger     *slog.Logger
}

// NewTagService creates a TagService with its collaborators
func NewTagService(
	userRepo repositories.UserRepositoryInterface,
	recordRepo repositories.RecordRepositoryInterface,
	logger *slog.Logger,
) *TagService {
	return &TagService{
		userRepo:   userRepo,
		recordRepo: recordRepo,
		logger:     logger.With(slog.String("service", "tags")),
	}
}

// ListTags returns the user's full tag vocabulary
func (s *TagService) ListTags(userID uuid.UUID) ([]string, error) {
	user, err := s.getUser(userID)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), user.Tags...), nil
}

// SearchTags returns vocabulary tags containing the fragment,
// matched case-insensitively
func (s *TagService) SearchTags(userID uuid.UUID, fragment string) ([]string, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, ErrEmptyTagSearch
	}

	user, err := s.getUser(userID)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(fragment)
	matches := []string{}
	for _, tag := range user.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			matches = append(matches, tag)
		}
	}
	return matches, nil
}

// AddTags canonicalizes the given tags and merges the new ones into the
// user's vocabulary, returning the updated vocabulary. Tags already present
// under any casing are skipped
func (s *TagService) AddTags(userID uuid.UUID, raw []string) ([]string, error) {
	canonical := tags.Canonicalize(raw)
	if len(canonical) == 0 {
		return nil, ErrNoValidTags
	}

	user, err := s.getUser(userID)
	if err != nil {
		return nil, err
	}

	updated := append(models.TagList(nil), user.Tags...)
	added := 0
	for _, tag := range canonical {
		if !updated.Contains(tag) {
			updated = append(updated, tag)
			added++
		}
	}

	if added > 0 {
		if err := s.userRepo.UpdateTags(userID, updated); err != nil {
			return nil, fmt.Errorf("failed to update tags: %w", err)
		}
		s.logger.Info("tags added",
			slog.String("user_id", userID.String()),
			slog.Int("count", added))
	}
	return updated, nil
}

// EditTag renames a vocabulary tag and cascades the rename onto every
// record carrying it
func (s *TagService) EditTag(userID uuid.UUID, oldTag, newTag string) (string, error) {
	newTag = strings.TrimSpace(newTag)
	if !tags.IsValidLength(newTag) {
		return "", ErrNoValidTags
	}

	user, err := s.getUser(userID)
	if err != nil {
		return "", err
	}

	oldIdx := -1
	for i, tag := range user.Tags {
		if strings.EqualFold(tag, oldTag) {
			oldIdx = i
			break
		}
	}
	if oldIdx < 0 {
		return "", ErrTagNotFound
	}

	for i, tag := range user.Tags {
		if i != oldIdx && strings.EqualFold(tag, newTag) {
			return "", ErrTagDuplicate
		}
	}

	updated := append(models.TagList(nil), user.Tags...)
	updated[oldIdx] = newTag
	if err := s.userRepo.UpdateTags(userID, updated); err != nil {
		return "", fmt.Errorf("failed to update tags: %w", err)
	}

	if err := s.recordRepo.RenameTag(userID, user.Tags[oldIdx], newTag); err != nil {
		return "", fmt.Errorf("failed to rename tag on records: %w", err)
	}

	s.logger.Info("tag renamed",
		slog.String("user_id", userID.String()),
		slog.String("old", user.Tags[oldIdx]),
		slog.String("new", newTag))
	return newTag, nil
}

// DeleteTags removes the named tags from the vocabulary and from every
// record carrying them, returning the tags actually removed
func (s *TagService) DeleteTags(userID uuid.UUID, tagNames []string) ([]string, error) {
	user, err := s.getUser(userID)
	if err != nil {
		return nil, err
	}

	var removed []string
	updated := models.TagList{}
	for _, tag := range user.Tags {
		matched := false
		for _, name := range tagNames {
			if strings.EqualFold(tag, name) {
				matched = true
				break
			}
		}
		if matched {
			removed = append(removed, tag)
		} else {
			updated = append(updated, tag)
		}
	}

	if len(removed) == 0 {
		return nil, ErrTagNotFound
	}

	if err := s.userRepo.UpdateTags(userID, updated); err != nil {
		return nil, fmt.Errorf("failed to update tags: %w", err)
	}
	for _, tag := range removed {
		if err := s.recordRepo.RemoveTag(userID, tag); err != nil {
			return nil, fmt.Errorf("failed to remove tag from records: %w", err)
		}
	}

	s.logger.Info("tags deleted",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(removed)))
	return removed, nil
}

func (s *TagService) getUser(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}
