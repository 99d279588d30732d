package models

// EconomyItem is a single inventory entry owned by the economy service.
type EconomyItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// EconomyProfile is a user's balance/inventory state. The external economy
// service owns and mutates it; this system only reads it.
type EconomyProfile struct {
	UserID    string        `json:"userId"`
	Username  string        `json:"username"`
	Avatar    string        `json:"avatar"`
	Wallet    int64         `json:"wallet"`
	Bank      int64         `json:"bank"`
	Inventory []EconomyItem `json:"inventory"`
}

// EconomyActionRequest is a delegated economy command. Execution happens
// entirely on the economy service side; this system only proxies it.
type EconomyActionRequest struct {
	Command string   `json:"command"`
	UserID  string   `json:"userId"`
	Args    []string `json:"args"`
}

// EconomyActionResult is whatever the economy service reports back for a
// proxied command.
type EconomyActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
