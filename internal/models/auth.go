package models

// TokenPair - выданные access- и refresh-токены
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RegisterInput - данные для регистрации
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	AreaID   string
}

// AuthResult - профиль пользователя и выданные токены
type AuthResult struct {
	User   *PublicUser
	Tokens *TokenPair
}
