package dto

// AddTagsRequest is the payload for adding tags to the vocabulary
type AddTagsRequest struct {
	Tags []string `json:"tags" validate:"required,min=1"`
}

// EditTagRequest is the payload for renaming a vocabulary tag
type EditTagRequest struct {
	OldTag string `json:"oldTag" validate:"required"`
	NewTag string `json:"newTag" validate:"required"`
}

// DeleteTagsRequest is the payload for removing tags from the vocabulary
type DeleteTagsRequest struct {
	Tags []string `json:"tags" validate:"required,min=1"`
}

// TagListResponse carries a list of vocabulary tags
type TagListResponse struct {
	Tags []string `json:"tags"`
}
