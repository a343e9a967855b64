package fyers

// StatusOK is the success marker Fyers sets in the "s" field of every
// response.
const StatusOK = "ok"

// TokenResponse is the payload returned by the validate-authcode endpoint.
type TokenResponse struct {
	S            string `json:"s"`
	Code         int    `json:"code"`
	Message      string `json:"message"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ProfileResponse is the payload returned by the profile endpoint.
type ProfileResponse struct {
	S       string      `json:"s"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    ProfileData `json:"data"`
}

// ProfileData carries the subset of profile fields this tool inspects.
type ProfileData struct {
	Name  string `json:"name"`
	FyID  string `json:"fy_id"`
	Email string `json:"email_id"`
}

// Ok reports whether the profile call succeeded on the Fyers side.
func (p *ProfileResponse) Ok() bool {
	return p.S == StatusOK
}
