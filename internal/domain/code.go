package domain

// Code is a single promo code published under a game. Payload is a
// free-form string (typically the code text handed to players).
type Code struct {
	GameID  string `json:"gameId" dynamodbav:"game_id"`
	CodeID  string `json:"codeId" validate:"required" dynamodbav:"code_id"`
	Payload string `json:"payload" dynamodbav:"payload"`
}

// CodeKey is the composite identity of a Code. Equality is identity
// only: a save under an existing key overwrites the previous payload
// instead of creating a second entry.
type CodeKey struct {
	GameID string
	CodeID string
}

// Key returns the composite identity of c.
func (c Code) Key() CodeKey {
	return CodeKey{GameID: c.GameID, CodeID: c.CodeID}
}
