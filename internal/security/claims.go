package security

import "time"

// Identity is the decoded output of a verified identity-provider token.
type Identity struct {
	Email   string
	Name    string
	Picture string
	Issuer  string
	Exp     time.Time
}
