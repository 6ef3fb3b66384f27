package domain

// WorkspaceType distinguishes real client workspaces from shared demos.
type WorkspaceType string

const (
	WorkspaceClient WorkspaceType = "client"
	WorkspaceDemo   WorkspaceType = "demo"
)

// Workspace is a company as seen by one user.
type Workspace struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Type        WorkspaceType `json:"type"`
	ActiveSince string        `json:"activeSince"`
	AccessLevel *PlatformRole `json:"accessLevel,omitempty"`
	Description *string       `json:"description,omitempty"`
	FirmID      *string       `json:"firmId,omitempty"`
}

// IsDemo reports whether the workspace is a shared demo.
func (w Workspace) IsDemo() bool {
	return w.Type == WorkspaceDemo
}

// WorkspaceResult is the outcome of resolving a user's visible workspaces.
// Errors holds human readable messages for lookups that failed; the lists
// contain whatever could still be established.
type WorkspaceResult struct {
	Assigned []Workspace `json:"assigned"`
	Demos    []Workspace `json:"demos"`
	Errors   []string    `json:"errors"`
}

// Find returns the workspace with id from either list.
func (r WorkspaceResult) Find(id string) (Workspace, bool) {
	for _, w := range r.Assigned {
		if w.ID == id {
			return w, true
		}
	}
	for _, w := range r.Demos {
		if w.ID == id {
			return w, true
		}
	}
	return Workspace{}, false
}

// ActiveCompany is the company the caller is currently acting on. It is
// passed explicitly through request context instead of living in shared storage.
type ActiveCompany struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// WorkspaceAction is what a caller wants to do with a company.
type WorkspaceAction string

const (
	ActionView WorkspaceAction = "view"
	ActionEdit WorkspaceAction = "edit"
)
