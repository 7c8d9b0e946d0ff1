package adapter

import "github.com/golang-jwt/jwt/v5"

// extractCSRFToken pulls the csrfToken claim out of the JWT-shaped session
// cookie without verifying the signature (the signing key belongs to the
// controller). A cookie with the wrong part count, an undecodable payload,
// or no csrfToken claim yields an empty string, never an error: the
// session is still usable, only the anti-forgery header is lost.
func extractCSRFToken(tokenCookie string) string {
	token, _, err := jwt.NewParser().ParseUnverified(tokenCookie, jwt.MapClaims{})
	if err != nil {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	csrfToken, ok := claims["csrfToken"].(string)
	if !ok {
		return ""
	}

	return csrfToken
}
