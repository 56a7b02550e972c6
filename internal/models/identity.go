package models

// Identity is the opaque subject of an authenticated caller, as issued by the identity provider
type Identity string

// String returns the identity as a plain string
func (i Identity) String() string {
	return string(i)
}
