// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

const (
	OWNER_RELATION  = "owner"
	MEMBER_RELATION = "member"

	PLATFORM_RELATION = "platform"
	ADMIN_RELATION    = "admin"

	CAN_VIEW_PERMISSION = "can_view"
	CAN_EDIT_PERMISSION = "can_edit"

	// PlatformID is the single platform object every tenant is linked to.
	PlatformID = "storefront"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func TenantTuple(tenantId string) string {
	return "tenant:" + tenantId
}

func PlatformTuple(platformId string) string {
	return "platform:" + platformId
}
