package auth

// ErrorCode is the closed set of failure codes the session issuer can
// return. Unknown codes must collapse to a generic message so responses
// never reveal whether an email is registered.
type ErrorCode string

const (
	ErrorCodeIncorrectUsernamePassword         ErrorCode = "incorrect-username-password"
	ErrorCodeSecondFactorRequired              ErrorCode = "second-factor-required"
	ErrorCodeIncorrectTwoFactorCode            ErrorCode = "incorrect-two-factor-code"
	ErrorCodeInternalServerError               ErrorCode = "internal-server-error"
	ErrorCodeThirdPartyIdentityProviderEnabled ErrorCode = "third-party-identity-provider-enabled"
)

// GenericErrorMessage is the fallback for every code without a mapping.
const GenericErrorMessage = "Something went wrong. Please try again."

var errorMessages = map[ErrorCode]string{
	ErrorCodeIncorrectUsernamePassword:         "Incorrect email or password.",
	ErrorCodeIncorrectTwoFactorCode:            "Incorrect two-factor code. Please try again.",
	ErrorCodeInternalServerError:               "Something went wrong. Please try again and contact us if the issue persists.",
	ErrorCodeThirdPartyIdentityProviderEnabled: "Your account was created using an identity provider.",
}

// MessageFor maps an error code to its user-facing text, falling back to the
// generic message for unmapped codes.
func MessageFor(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return GenericErrorMessage
}
