package common

// AuthorizationHeader is the HTTP header carrying the bearer token on
// outbound requests.
const AuthorizationHeader = "Authorization"

// Claim keys used by the stats backend (ASP.NET Identity). The token codec
// reads role and display name from these; a missing claim yields an empty
// value, not an error.
const (
	ClaimKeyRole = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
	ClaimKeyName = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
)

// RoleAdmin unlocks the admin panel operations.
const RoleAdmin = "Admin"
