package domain

// User is an SSO principal. The id is the login reported by the OAuth2
// provider; Attributes is an open key-value bag the owner maintains
// (display name, avatar URL, whatever the client wants to stash).
// Users are created on first login and never deleted.
type User struct {
	UserID     string            `json:"id" dynamodbav:"user_id"`
	Attributes map[string]string `json:"attributes" dynamodbav:"attributes"`
}
