package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllowAssign(t *testing.T) {
	require.True(t, RequestStatusPending.AllowAssign())
	require.True(t, RequestStatusApprovedByMaster.AllowAssign())
	require.False(t, RequestStatusAssigned.AllowAssign())
	require.False(t, RequestStatusSubmitted.AllowAssign())
	require.False(t, RequestStatusChangesRequested.AllowAssign())
	require.False(t, RequestStatusFinalized.AllowAssign())
}

func TestAllowReject(t *testing.T) {
	require.True(t, RequestStatusPending.AllowReject())
	require.False(t, RequestStatusAssigned.AllowReject())
	require.False(t, RequestStatusSubmitted.AllowReject())
	require.False(t, RequestStatusFinalized.AllowReject())
	require.False(t, RequestStatusRejected.AllowReject())
}

func TestIsTerminal(t *testing.T) {
	require.True(t, RequestStatusFinalized.IsTerminal())
	require.True(t, RequestStatusRejected.IsTerminal())
	require.False(t, RequestStatusPending.IsTerminal())
	require.False(t, RequestStatusSubmitted.IsTerminal())
}

func TestRoleChecks(t *testing.T) {
	require.True(t, MasterRole.IsMaster())
	require.False(t, DesignRole.IsMaster())
	for _, role := range TeamRoles() {
		require.True(t, role.IsTeam())
	}
	require.False(t, MasterRole.IsTeam())
	require.False(t, EmployeeRole.IsTeam())
}
