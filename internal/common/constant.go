package common

// TokenStorageKey is the durable client-local storage key holding the raw
// bearer token. Absence of the key means the user is logged out.
const TokenStorageKey = "token"
