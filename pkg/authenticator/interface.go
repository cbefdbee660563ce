package authenticator

type TokenEngine[T any] interface {
	// Generate creates a signed token with the given subject and an embedded
	// object of type T.
	Generate(sub string, obj T) (string, error)

	// Verify checks the signature and expiration of a token and returns the
	// embedded object.
	Verify(token string) (T, error)
}
