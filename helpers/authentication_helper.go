package helpers

import (
	"net/http"
)

const (
	// Oauth2IdentityType is the identity type set for users authenticated via oauth2
	Oauth2IdentityType = "oauth2"

	ericIdentity       = "ERIC-Identity"
	ericIdentityType   = "ERIC-Identity-Type"
	ericAuthorisedUser = "ERIC-Authorised-User"
)

// GetAuthorisedIdentity returns the authenticated caller's identity from the request
func GetAuthorisedIdentity(r *http.Request) string {
	return r.Header.Get(ericIdentity)
}

// GetAuthorisedIdentityType returns the type of the authenticated caller's identity
func GetAuthorisedIdentityType(r *http.Request) string {
	return r.Header.Get(ericIdentityType)
}

// GetAuthorisedUser returns the authenticated caller's user details from the request
func GetAuthorisedUser(r *http.Request) string {
	return r.Header.Get(ericAuthorisedUser)
}
