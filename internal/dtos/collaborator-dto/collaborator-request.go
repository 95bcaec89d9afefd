package collaborator_dto

type ParamCollaboratorID struct {
	ID string `params:"id" validate:"required,uuid"`
}

// CreateCollaboratorRequest registers a team member. Email is required but
// deliberately not unique.
type CreateCollaboratorRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
}

type ReplaceCollaboratorRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
}
