package keycloak

// ResourceOwner is the authenticated end user behind an access token,
// backed by the verified claims of the userinfo response.
type ResourceOwner struct {
	claims map[string]any
}

// NewResourceOwner wraps verified claims.
func NewResourceOwner(claims map[string]any) *ResourceOwner {
	if claims == nil {
		claims = map[string]any{}
	}
	return &ResourceOwner{claims: claims}
}

// ID returns the subject identifier ("sub" claim).
func (o *ResourceOwner) ID() string {
	return o.stringClaim("sub")
}

// Name returns the full display name.
func (o *ResourceOwner) Name() string {
	return o.stringClaim("name")
}

// Email returns the email address.
func (o *ResourceOwner) Email() string {
	return o.stringClaim("email")
}

// Username returns the preferred username.
func (o *ResourceOwner) Username() string {
	return o.stringClaim("preferred_username")
}

// GivenName returns the first name.
func (o *ResourceOwner) GivenName() string {
	return o.stringClaim("given_name")
}

// FamilyName returns the last name.
func (o *ResourceOwner) FamilyName() string {
	return o.stringClaim("family_name")
}

// Claim returns a single claim by name, or nil when absent.
func (o *ResourceOwner) Claim(name string) any {
	return o.claims[name]
}

// Claims returns a copy of all claims.
func (o *ResourceOwner) Claims() map[string]any {
	out := make(map[string]any, len(o.claims))
	for k, v := range o.claims {
		out[k] = v
	}
	return out
}

func (o *ResourceOwner) stringClaim(name string) string {
	if v, ok := o.claims[name].(string); ok {
		return v
	}
	return ""
}
