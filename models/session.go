package models

// SessionUser is the authenticated site visitor, as stored in the
// encrypted session cookie. Created on a successful OAuth exchange and
// destroyed on logout.
type SessionUser struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Avatar        string `json:"avatar"`
	Discriminator string `json:"discriminator"`
}
