// Package access holds the pure authorization decisions for shipment and
// profile operations. Every function is a side-effect-free computation over
// the caller's role/identity and the target resource's ownership; callers
// translate a false result into a 403. Public tracking lookup has no entry
// here because it requires no authentication at all.
package access

import "github.com/shippy/shipment-tracker/internal/model"

// CanViewShipment allows admins and the owning user to read a shipment.
func CanViewShipment(usertype model.UserType, subjectID, ownerID string) bool {
    return usertype.IsAdmin() || subjectID == ownerID
}

// CanDeleteShipment allows admins and the owning user to delete a shipment.
func CanDeleteShipment(usertype model.UserType, subjectID, ownerID string) bool {
    return usertype.IsAdmin() || subjectID == ownerID
}

// CanUpdateStatus restricts status transitions to admins. Ownership grants
// no mutation right on status.
func CanUpdateStatus(usertype model.UserType) bool {
    return usertype.IsAdmin()
}

// ListScope resolves the query scope for a shipment listing. Admins see all
// records; everyone else is implicitly filtered to their own. This is a
// scope decision, never a denial.
func ListScope(usertype model.UserType, subjectID string) (ownerID string, all bool) {
    if usertype.IsAdmin() {
        return "", true
    }
    return subjectID, false
}
