package user

// Principal is the authenticated caller as reported by the account service.
type Principal struct {
	UserID  string
	Name    string
	Email   string
	IsAdmin bool
}
