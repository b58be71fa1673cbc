package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"quill/backend/internal/model"
	"quill/backend/internal/service"
)

type ItemsHandler struct {
	review     service.ReviewService
	generation service.GenerationService
	publisher  service.PublishService
	settings   service.SettingsService
}

type itemResponse struct {
	ID                  string           `json:"id"`
	SourceID            string           `json:"sourceId"`
	URL                 string           `json:"url"`
	Status              model.ItemStatus `json:"status"`
	OriginalTitle       *string          `json:"originalTitle,omitempty"`
	OriginalExcerpt     *string          `json:"originalExcerpt,omitempty"`
	OriginalBody        *string          `json:"originalBody,omitempty"`
	OriginalPublishedAt *string          `json:"originalPublishedAt,omitempty"`
	GeneratedTitle      *string          `json:"generatedTitle,omitempty"`
	GeneratedExcerpt    *string          `json:"generatedExcerpt,omitempty"`
	GeneratedBody       *string          `json:"generatedBody,omitempty"`
	ProcessedAt         *string          `json:"processedAt,omitempty"`
	PostID              *string          `json:"postId,omitempty"`
	AbsorbedInto        *string          `json:"absorbedInto,omitempty"`
	FetchedAt           string           `json:"fetchedAt"`
	UpdatedAt           string           `json:"updatedAt"`
}

type itemListResponse struct {
	Items  []itemResponse `json:"items"`
	Counts map[string]int `json:"counts"`
}

type combineRequest struct {
	IDs []string `json:"ids"`
}

type publishRequest struct {
	AuthorID   *int64 `json:"authorId"`
	CategoryID *int64 `json:"categoryId"`
}

type postResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Slug        string             `json:"slug"`
	Excerpt     string             `json:"excerpt"`
	Body        string             `json:"body"`
	Status      model.PostStatus   `json:"status"`
	PublishedAt *string            `json:"publishedAt,omitempty"`
	AuthorID    int64              `json:"authorId"`
	CategoryID  int64              `json:"categoryId"`
	Metadata    model.PostMetadata `json:"metadata"`
}

func NewItemsHandler(review service.ReviewService, generation service.GenerationService, publisher service.PublishService, settings service.SettingsService) *ItemsHandler {
	return &ItemsHandler{review: review, generation: generation, publisher: publisher, settings: settings}
}

func (h *ItemsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/items", h.List)
	g.POST("/items/combine", h.Combine)
	g.GET("/items/:id", h.Get)
	g.POST("/items/:id/generate", h.Generate)
	g.POST("/items/:id/publish", h.Publish)
	g.POST("/items/:id/reject", h.Reject)
	g.POST("/items/:id/approve", h.Approve)
}

// List returns fetched items in one status with per-status counts.
// @Summary List fetched items
// @Description List items of the review queue filtered by status
// @Tags items
// @Produce json
// @Param status query string false "Status filter (pending, processing, approved, published, rejected, absorbed)" default(approved)
// @Param limit query int false "Maximum number of items" default(50)
// @Success 200 {object} itemListResponse
// @Failure 400 {object} errorResponse
// @Router /items [get]
func (h *ItemsHandler) List(c echo.Context) error {
	status := model.StatusApproved
	if raw := c.QueryParam("status"); raw != "" {
		parsed, err := model.ParseItemStatus(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid status"})
		}
		status = parsed
	}
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid limit"})
		}
		limit = parsed
	}

	ctx := c.Request().Context()
	items, err := h.review.List(ctx, status, limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	counts, err := h.review.Counts(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}

	response := itemListResponse{
		Items:  make([]itemResponse, 0, len(items)),
		Counts: make(map[string]int, len(counts)),
	}
	for _, item := range items {
		response.Items = append(response.Items, toItemResponse(item))
	}
	for s, n := range counts {
		response.Counts[s.String()] = n
	}
	return c.JSON(http.StatusOK, response)
}

// Get returns one fetched item.
// @Summary Get a fetched item
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} itemResponse
// @Failure 404 {object} errorResponse
// @Router /items/{id} [get]
func (h *ItemsHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	item, err := h.review.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}

// Generate rewrites one pending item now.
// @Summary Generate an article
// @Description Run the AI provider on a single pending item
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} itemResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Failure 503 {object} errorResponse
// @Router /items/{id}/generate [post]
func (h *ItemsHandler) Generate(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	item, err := h.generation.GenerateItem(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}

// Combine merges several pending items into one article.
// @Summary Generate a combined article
// @Description Rewrite several pending items into one article stored on the first id
// @Tags items
// @Accept json
// @Produce json
// @Param request body combineRequest true "Item IDs, primary first"
// @Success 200 {object} itemResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /items/combine [post]
func (h *ItemsHandler) Combine(c echo.Context) error {
	var req combineRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	ids := make([]int64, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := parseIDString(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
		}
		ids = append(ids, id)
	}
	item, err := h.generation.GenerateCombined(c.Request().Context(), ids)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}

// Publish turns an approved item into a post.
// @Summary Publish an item
// @Description Create a post from an approved item. Missing targets fall back to the publishing defaults.
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body publishRequest false "Publish target"
// @Success 201 {object} postResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /items/{id}/publish [post]
func (h *ItemsHandler) Publish(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	var req publishRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
		}
	}

	ctx := c.Request().Context()
	if req.AuthorID == nil || req.CategoryID == nil {
		defaults, err := h.settings.GetPublishingSettings(ctx)
		if err != nil {
			return writeServiceError(c, err)
		}
		if req.AuthorID == nil {
			req.AuthorID = defaults.DefaultAuthorID
		}
		if req.CategoryID == nil {
			req.CategoryID = defaults.DefaultCategoryID
		}
	}
	if req.AuthorID == nil || req.CategoryID == nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "author and category are required"})
	}

	post, err := h.publisher.PublishByID(ctx, id, service.PublishTarget{AuthorID: *req.AuthorID, CategoryID: *req.CategoryID})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// Reject removes an approved item from the publish queue.
// @Summary Reject an item
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} itemResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /items/{id}/reject [post]
func (h *ItemsHandler) Reject(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	item, err := h.review.Reject(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}

// Approve puts a rejected item back in the publish queue.
// @Summary Re-approve an item
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} itemResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /items/{id}/approve [post]
func (h *ItemsHandler) Approve(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	item, err := h.review.Reapprove(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}

func toItemResponse(item model.FetchedItem) itemResponse {
	return itemResponse{
		ID:                  idToString(item.ID),
		SourceID:            idToString(item.SourceID),
		URL:                 item.URL,
		Status:              item.Status,
		OriginalTitle:       item.OriginalTitle,
		OriginalExcerpt:     item.OriginalExcerpt,
		OriginalBody:        item.OriginalBody,
		OriginalPublishedAt: formatTimePtr(item.OriginalPublishedAt),
		GeneratedTitle:      item.GeneratedTitle,
		GeneratedExcerpt:    item.GeneratedExcerpt,
		GeneratedBody:       item.GeneratedBody,
		ProcessedAt:         formatTimePtr(item.ProcessedAt),
		PostID:              idPtrToString(item.PostID),
		AbsorbedInto:        idPtrToString(item.AbsorbedInto),
		FetchedAt:           formatTime(item.FetchedAt),
		UpdatedAt:           formatTime(item.UpdatedAt),
	}
}

func toPostResponse(post model.Post) postResponse {
	return postResponse{
		ID:          idToString(post.ID),
		Title:       post.Title,
		Slug:        post.Slug,
		Excerpt:     post.Excerpt,
		Body:        post.Body,
		Status:      post.Status,
		PublishedAt: formatTimePtr(post.PublishedAt),
		AuthorID:    post.AuthorID,
		CategoryID:  post.CategoryID,
		Metadata:    post.Metadata,
	}
}
