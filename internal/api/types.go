package api

// MatchRequest is the body for pantry matching. Limit is a pointer so an
// omitted limit (default applies) can be told apart from an explicit
// non-positive one (empty result).
type MatchRequest struct {
	Ingredients []string `json:"ingredients"`
	Limit       *int     `json:"limit"`
}

// TokenRequest is the body for operator token issuance.
type TokenRequest struct {
	Password string `json:"password" binding:"required"`
}
