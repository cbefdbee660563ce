package model

// AccessToken is the object embedded into the jwt access token.
type AccessToken struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}

func (r RegisterResponse) AccessTokenInfo() string {
	return r.AccessToken
}

func (r RegisterResponse) SessionInfo() map[string]any {
	return map[string]any{"user_id": r.User.ID}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}

func (r LoginResponse) AccessTokenInfo() string {
	return r.AccessToken
}

func (r LoginResponse) SessionInfo() map[string]any {
	return map[string]any{"user_id": r.User.ID}
}
