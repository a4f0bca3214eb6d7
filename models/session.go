package models

// ViewState is the snapshot of what the user was looking at, embedded in the
// reauthentication cookie so a page reload resumes where the user left off
// instead of dropping back to the note list.
type ViewState struct {
	// OpenNoteID is the identifier of the note that was open, if any.
	OpenNoteID *int64 `json:"open_note_id,omitempty"`

	// CreateNoteInProgress marks that the create-note form was showing.
	CreateNoteInProgress bool `json:"create_note_in_progress,omitempty"`
}
