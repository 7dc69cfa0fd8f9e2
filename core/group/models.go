package group

import (
	"github.com/tutorlink/tutorlink-go/core"
	"github.com/tutorlink/tutorlink-go/core/enrollment"
)

// StudentGroup is a student-owned study group joinable by its unique code.
type StudentGroup struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	GroupCode   string `json:"groupCode"`
	CreatedBy   string `json:"createdBy"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
	Creator     *struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		User      *struct {
			Email string `json:"email"`
		} `json:"user,omitempty"`
	} `json:"creator,omitempty"`
	MemberCount int `json:"memberCount,omitempty"`
}

// CreateGroup contains information needed to create a study group.
type CreateGroup struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

func (cg *CreateGroup) Validate() error {
	cg.Name = core.CleanString(cg.Name)
	return core.TranslateError(core.Validate.Struct(cg))
}

// UpdateGroup defines what the owner may change on a group.
type UpdateGroup struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

func (ug *UpdateGroup) Validate() error {
	return core.TranslateError(core.Validate.Struct(ug))
}

// Member is one membership record in a group; Status follows the same
// PENDING → APPROVED/REJECTED lifecycle as course enrollments.
type Member struct {
	ID        string            `json:"id"`
	StudentID string            `json:"studentId"`
	GroupID   string            `json:"groupId"`
	Status    enrollment.Status `json:"status"`
	Student   struct {
		FirstName    string `json:"firstName"`
		LastName     string `json:"lastName"`
		ProfileImage string `json:"profileImage,omitempty"`
	} `json:"student"`
}

// Details is a group with its membership embedded.
type Details struct {
	StudentGroup
	Enrollments []Member `json:"enrollments"`
}

// Stats summarizes a group's membership.
type Stats struct {
	TotalMembers    int `json:"totalMembers"`
	PendingRequests int `json:"pendingRequests"`
}

// DetailedInfo is the full group view: approved members, unresolved join
// requests and membership stats.
type DetailedInfo struct {
	StudentGroup
	Members         []Member `json:"members"`
	PendingRequests []Member `json:"pendingRequests"`
	Stats           Stats    `json:"stats"`
}

// PendingRequest is a join request awaiting the group owner's decision.
type PendingRequest struct {
	ID          string `json:"id"`
	GroupID     string `json:"groupId"`
	GroupName   string `json:"groupName"`
	RequestedAt string `json:"requestedAt"`
	Student     struct {
		ID           string `json:"id"`
		FirstName    string `json:"firstName"`
		LastName     string `json:"lastName"`
		Email        string `json:"email,omitempty"`
		ProfileImage string `json:"profileImage,omitempty"`
	} `json:"student"`
}
