package constants

import "fmt"

// Capability grants yang dipakai identity linker & middleware role.
const (
	GrantPortal      = "portal"       // preacher self-service (aplikasi mobile)
	GrantInternal    = "internal"     // staf backend
	GrantMosqueAdmin = "mosque-admin" // pengurus masjid (DKM)
)

// user_type yang valid saat register.
const (
	UserTypePreacher = "preacher"
)

// Template pesan error role
const (
	ErrOnlyMosqueAdminsCanAccess = "❌ Hanya pengurus masjid yang boleh mengakses fitur %s."
	ErrOnlyPortalUsersCanAccess  = "❌ Hanya akun pendakwah yang boleh mengakses fitur %s."
)

func RoleErrorMosqueAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyMosqueAdminsCanAccess, feature)
}

func RoleErrorPortal(feature string) string {
	return fmt.Sprintf(ErrOnlyPortalUsersCanAccess, feature)
}

// ==========================
// ✅ Grouped Grant Slices
// ==========================
var (
	PreacherGrants = []string{
		GrantPortal,
	}

	BoardMemberGrants = []string{
		GrantInternal,
		GrantMosqueAdmin,
	}
)
