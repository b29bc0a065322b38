package domain

// User is the authenticated account as the remote service reports it.
type User struct {
	// ID is the unique identifier assigned by the service.
	ID int64

	// Username is the login name.
	Username string

	// Email is the registered email address.
	Email string

	// FullName is the optional display name.
	FullName string

	// Active indicates whether the account is enabled.
	Active bool
}

// Credential is the bearer token plus the identity it resolves to.
// A Credential is only ever observable fully populated: a token without
// a resolved User is treated as logged out.
type Credential struct {
	// Token is the opaque bearer token accepted by the service.
	Token string

	// User is the identity the token resolves to.
	User User
}
