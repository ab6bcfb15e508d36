package dto

import (
	"fmt"
	"slices"
	"strings"

	"github.com/photostreak/streak-service/internal/domain"
	"github.com/photostreak/streak-service/internal/domain/group"
)

const (
	msgMustNotEmpty = "must not be empty"

	maxGroupNameLen = 100
	maxCaptionLen   = 500
	maxLocationLen  = 200
)

// CreateGroupRequest represents the JSON body for creating a group. The
// caller becomes the creator and is added to Members when missing.
type CreateGroupRequest struct {
	Name     string   `json:"name"`
	Members  []string `json:"members"`
	PhotoURL string   `json:"group_photo_url,omitempty"`
}

// Validate checks the request shape. Membership rules that depend on the
// creator are enforced by the domain.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateGroupRequest) Validate() error {
	fields := make(map[string]string)

	switch name := strings.TrimSpace(r.Name); {
	case name == "":
		fields["name"] = domain.MsgRequired
	case len(name) > maxGroupNameLen:
		fields["name"] = fmt.Sprintf("must be at most %d characters", maxGroupNameLen)
	}
	if len(r.Members) == 0 {
		fields["members"] = domain.MsgRequired
	} else if slices.ContainsFunc(r.Members, func(m string) bool { return strings.TrimSpace(m) == "" }) {
		fields["members"] = "must not contain empty user ids"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToGroup maps the request to a new domain group created by creatorID.
func (r *CreateGroupRequest) ToGroup(creatorID string) *group.Group {
	members := make([]string, 0, len(r.Members)+1)
	for _, m := range r.Members {
		members = append(members, strings.TrimSpace(m))
	}
	if !slices.Contains(members, creatorID) {
		members = append([]string{creatorID}, members...)
	}
	return &group.Group{
		Name:      strings.TrimSpace(r.Name),
		Members:   members,
		CreatedBy: creatorID,
		PhotoURL:  r.PhotoURL,
	}
}

// CreatePostForm holds the text fields of the multipart post upload. The
// image itself is streamed separately.
type CreatePostForm struct {
	Caption  string
	Location string
}

// Validate checks field lengths.
// Returns a *domain.ValidationError if any checks fail.
func (f *CreatePostForm) Validate() error {
	fields := make(map[string]string)

	if len(f.Caption) > maxCaptionLen {
		fields["caption"] = fmt.Sprintf("must be at most %d characters", maxCaptionLen)
	}
	if len(f.Location) > maxLocationLen {
		fields["location"] = fmt.Sprintf("must be at most %d characters", maxLocationLen)
	}
	if f.Location != "" && strings.TrimSpace(f.Location) == "" {
		fields["location"] = msgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
