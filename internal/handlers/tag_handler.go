package handlers

import (
	"errors"
	"net/http"

	"expense-tracker/internal/dto"
	apperrors "expense-tracker/internal/errors"
	"expense-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// TagHandler handles tag vocabulary endpoints
type TagHandler struct {
	tagService services.TagServiceInterface
}

// NewTagHandler creates a new tag handler
func NewTagHandler(tagService services.TagServiceInterface) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// ListTags returns the authenticated user's tag vocabulary
// @Summary List tags
// @Tags Tags
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.TagListResponse "Tag vocabulary"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /tags [get]
func (h *TagHandler) ListTags(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	tags, err := h.tagService.ListTags(userID)
	if err != nil {
		return h.mapTagError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TagListResponse{Tags: tags})
}

// SearchTags returns vocabulary tags matching a fragment
// @Summary Search tags
// @Tags Tags
// @Security BearerAuth
// @Produce json
// @Param q query string true "Search fragment"
// @Success 200 {object} dto.TagListResponse "Matching tags"
// @Failure 422 {object} errors.ErrorResponse "TAG_004 - Empty tag given"
// @Router /tags/search [get]
func (h *TagHandler) SearchTags(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	tags, err := h.tagService.SearchTags(userID, c.QueryParam("q"))
	if err != nil {
		return h.mapTagError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TagListResponse{Tags: tags})
}

// AddTags adds new tags to the vocabulary
// @Summary Add tags
// @Tags Tags
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AddTagsRequest true "Tags to add"
// @Success 200 {object} dto.TagListResponse "Updated vocabulary"
// @Failure 422 {object} errors.ErrorResponse "TAG_003 - No valid tags"
// @Router /tags [post]
func (h *TagHandler) AddTags(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.AddTagsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithMessage("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	tags, err := h.tagService.AddTags(userID, req.Tags)
	if err != nil {
		return h.mapTagError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TagListResponse{Tags: tags})
}

// EditTag renames a vocabulary tag and every record carrying it
// @Summary Edit tag
// @Tags Tags
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.EditTagRequest true "Rename details"
// @Success 200 {object} SuccessResponse "Tag renamed"
// @Failure 422 {object} errors.ErrorResponse "TAG_001 - Tag does not exist or TAG_002 - Tag already exists"
// @Router /tags [put]
func (h *TagHandler) EditTag(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.EditTagRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithMessage("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	renamed, err := h.tagService.EditTag(userID, req.OldTag, req.NewTag)
	if err != nil {
		return h.mapTagError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    map[string]string{"tag": renamed},
		Message: "Tag renamed successfully",
	})
}

// DeleteTags removes tags from the vocabulary and from every record carrying them
// @Summary Delete tags
// @Tags Tags
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.DeleteTagsRequest true "Tags to delete"
// @Success 200 {object} dto.TagListResponse "Removed tags"
// @Failure 422 {object} errors.ErrorResponse "TAG_001 - Tag does not exist"
// @Router /tags [delete]
func (h *TagHandler) DeleteTags(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.DeleteTagsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithMessage("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	removed, err := h.tagService.DeleteTags(userID, req.Tags)
	if err != nil {
		return h.mapTagError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TagListResponse{Tags: removed})
}

func (h *TagHandler) mapTagError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return SendError(c, apperrors.UserNotFound)
	case errors.Is(err, services.ErrTagNotFound):
		return SendError(c, apperrors.TagNotFound)
	case errors.Is(err, services.ErrTagDuplicate):
		return SendError(c, apperrors.TagDuplicate)
	case errors.Is(err, services.ErrNoValidTags):
		return SendError(c, apperrors.TagNoValidTags)
	case errors.Is(err, services.ErrEmptyTagSearch):
		return SendError(c, apperrors.TagEmptySearch)
	default:
		return SendSystemError(c, err)
	}
}
