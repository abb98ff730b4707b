package session

// TokenHeader is the request header clients use to present the
// session token on authenticated calls.
const TokenHeader = "x-access-token"
