package model

import "github.com/aono-lab/portsync/pkg/domain/types"

// Group represents a resolved directory group
type Group struct {
	ID          types.GroupID
	DisplayName types.GroupName
}

// ODataTypeUser is the type tag Graph attaches to user member records
const ODataTypeUser = "#microsoft.graph.user"

// MemberRecord is a raw entry from the transitive membership listing.
// Non-user records (nested groups, devices, service principals) are carried
// through untouched and filtered during identity extraction.
type MemberRecord struct {
	ODataType         string `json:"@odata.type"`
	ID                string `json:"id"`
	DisplayName       string `json:"displayName"`
	Mail              string `json:"mail"`
	UserPrincipalName string `json:"userPrincipalName"`
}

// IsUser reports whether the record is a user object
func (m MemberRecord) IsUser() bool {
	return m.ODataType == ODataTypeUser
}
