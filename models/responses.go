package models

// TokenResponse is the body returned by POST /api/auth/login.
type TokenResponse struct {
	// AccessToken is the signed bearer token to present on API calls.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`
}

// SessionResponse is the body returned by GET /api/auth/session after a
// successful reauthentication-cookie validation. It carries everything the
// client needs to resume without showing the login form.
type SessionResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	User        IdentitySummary `json:"user"`
	ViewState   ViewState       `json:"view_state"`
}

// TranslationPreviewResponse is the body returned by the preview variant of
// the translate endpoint. The note itself is left untouched.
type TranslationPreviewResponse struct {
	NoteID         int64  `json:"note_id"`
	TranslatedText string `json:"translated_text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}
