package domain

// Game is a promo-code container owned by exactly one user.
// Details is a free-form JSON document the owner manages; it never
// participates in identity.
type Game struct {
	UserID  string `json:"userId" dynamodbav:"user_id"`
	GameID  string `json:"gameId" dynamodbav:"game_id"`
	Details string `json:"details" dynamodbav:"details"`
}

// GameKey is the composite identity of a Game. Two games with the same
// key are the same record regardless of Details, so stores must key on
// this struct (or the equivalent PK+SK pair) and never on the full value.
type GameKey struct {
	UserID string
	GameID string
}

// Key returns the composite identity of g.
func (g Game) Key() GameKey {
	return GameKey{UserID: g.UserID, GameID: g.GameID}
}

// CreateGameRequest is the POST /games body. The server assigns GameID,
// so the request carries details only; a client-supplied id is rejected
// at the transport layer.
type CreateGameRequest struct {
	GameID  string `json:"gameId"`
	Details string `json:"details"`
}
