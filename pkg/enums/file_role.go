package enums

import "fmt"

// FileRole names the business purpose of a carrier document upload. The role
// decides the stored filename suffix, so every role must stay distinct.
type FileRole string

const (
	FileRoleOperatingAuthority    FileRole = "operatingAuthority"
	FileRoleInsuranceCertificates FileRole = "insuranceCertificates"
	FileRoleW9Form                FileRole = "w9Form"
	FileRoleInsuranceCertificate  FileRole = "insuranceCertificate"
)

var validFileRoles = []FileRole{
	FileRoleOperatingAuthority,
	FileRoleInsuranceCertificates,
	FileRoleW9Form,
	FileRoleInsuranceCertificate,
}

// String returns the literal string for the role.
func (r FileRole) String() string {
	return string(r)
}

// IsValid reports whether the role is known.
func (r FileRole) IsValid() bool {
	for _, candidate := range validFileRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// MultiFile reports whether the role accepts more than one upload.
func (r FileRole) MultiFile() bool {
	return r == FileRoleInsuranceCertificates
}

// FileRoles returns every known role.
func FileRoles() []FileRole {
	out := make([]FileRole, len(validFileRoles))
	copy(out, validFileRoles)
	return out
}

// ParseFileRole converts raw input into a FileRole.
func ParseFileRole(value string) (FileRole, error) {
	for _, candidate := range validFileRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid file role %q", value)
}
