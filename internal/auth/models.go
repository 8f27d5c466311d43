package auth

// Explorer is the identity carried in a session token. Explorers are not
// stored; the OAuth provider is the source of truth.
type Explorer struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Provider  string `json:"provider"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}
