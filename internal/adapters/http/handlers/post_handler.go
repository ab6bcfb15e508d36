package handlers

import (
	"errors"
	"net/http"

	"github.com/photostreak/streak-service/internal/adapters/http/dto"
	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/ports"
)

const (
	formImage    = "image"
	formCaption  = "caption"
	formLocation = "location"

	// multipartOverhead covers the form fields and part headers that travel
	// alongside the image.
	multipartOverhead = 1 << 20
	// multipartMemory is how much of the form is buffered in memory before
	// spilling to temp files.
	multipartMemory = 8 << 20
)

// PostHandler handles daily photo uploads.
type PostHandler struct {
	posts          ports.PostService
	maxUploadBytes int64
}

// NewPostHandler creates a new PostHandler. maxUploadBytes bounds the image
// part of the upload.
func NewPostHandler(posts ports.PostService, maxUploadBytes int64) *PostHandler {
	return &PostHandler{posts: posts, maxUploadBytes: maxUploadBytes}
}

// CreatePost handles POST /api/v1/groups/{groupId}/posts. The body is a
// multipart form with an "image" file and optional "caption" and "location"
// fields. The response is 201 even when the streak evaluation that follows
// the upload fails; streak_error reports that case.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	caller, groupID, ok := callerAndGroup(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			dto.WriteErrorResponse(w, r, &domain.ValidationError{
				Fields: map[string]string{formImage: "upload is too large"},
			})
			return
		}
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "must be multipart/form-data"},
		})
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	form := dto.CreatePostForm{
		Caption:  r.FormValue(formCaption),
		Location: r.FormValue(formLocation),
	}
	if err := form.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	file, _, err := r.FormFile(formImage)
	if err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{formImage: domain.MsgRequired},
		})
		return
	}
	defer func() { _ = file.Close() }()

	res, err := h.posts.CreatePost(r.Context(), ports.NewPost{
		GroupID:  groupID,
		UserID:   caller.UserID,
		Username: caller.Name,
		Caption:  form.Caption,
		Location: form.Location,
		Image:    file,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToCreatePostResponse(res))
}
