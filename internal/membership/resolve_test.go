package membership

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"community_site/internal/models"
)

func row(id int64, first string, status models.MembershipStatus) models.Membership {
	return models.Membership{ID: id, FirstName: first, Email: "jane@x.com", Status: status}
}

func TestFirstName(t *testing.T) {
	assert.Equal(t, "Jane", FirstName("Jane Doe"))
	assert.Equal(t, "Jane", FirstName("  Jane   Mary Doe "))
	assert.Equal(t, "", FirstName("   "))
}

func TestResolve_NoRowsIsNotFound(t *testing.T) {
	d := Resolve(nil, "Jane Doe")
	assert.Equal(t, DeniedNotFound, d.Outcome)
	assert.Nil(t, d.Record)
}

func TestResolve_ApprovedMatchIsGranted(t *testing.T) {
	d := Resolve([]models.Membership{row(1, "Jane", models.MembershipApproved)}, "jane doe")
	require.Equal(t, Granted, d.Outcome)
	assert.Equal(t, int64(1), d.Record.ID)
	assert.Contains(t, d.Message, "Access granted")
}

func TestResolve_ApprovedWinsOverNoise(t *testing.T) {
	rows := []models.Membership{
		row(1, "Jane", models.MembershipPending),
		row(2, "Bob", models.MembershipApproved),
		row(3, "Jane", models.MembershipDeclined),
		row(4, "JANE", models.MembershipApproved),
		row(5, "Jane", models.MembershipApproved),
	}
	d := Resolve(rows, "Jane Doe")
	require.Equal(t, Granted, d.Outcome)
	assert.Equal(t, int64(4), d.Record.ID, "first approved match stops the scan")
}

func TestResolve_GrantedRegardlessOfOrder(t *testing.T) {
	base := []models.Membership{
		row(1, "Jane", models.MembershipDeclined),
		row(2, "Jane", models.MembershipPending),
		row(3, "Other", models.MembershipDeclined),
		row(4, "Jane", models.MembershipApproved),
	}
	// every rotation of the rows still grants
	for shift := range base {
		rows := append(append([]models.Membership{}, base[shift:]...), base[:shift]...)
		d := Resolve(rows, "Jane")
		assert.Equal(t, Granted, d.Outcome, "rotation %d", shift)
		assert.Equal(t, int64(4), d.Record.ID)
	}
}

func TestResolve_OnlyPendingMatchIsDeniedPending(t *testing.T) {
	rows := []models.Membership{
		row(1, "Bob", models.MembershipApproved),
		row(2, "Jane", models.MembershipPending),
		row(3, "Alice", models.MembershipApproved),
	}
	d := Resolve(rows, "Jane Doe")
	require.Equal(t, DeniedPending, d.Outcome)
	assert.Equal(t, int64(2), d.Record.ID)
}

func TestResolve_FirstPendingIsKept(t *testing.T) {
	rows := []models.Membership{
		row(1, "Jane", models.MembershipPending),
		row(2, "Jane", models.MembershipPending),
	}
	d := Resolve(rows, "Jane")
	assert.Equal(t, int64(1), d.Record.ID)
}

func TestResolve_OtherStatus(t *testing.T) {
	d := Resolve([]models.Membership{row(1, "Jane", models.MembershipDeclined)}, "Jane")
	require.Equal(t, DeniedOtherStatus, d.Outcome)
	assert.Contains(t, d.Message, "declined")
}

func TestResolve_FirstMatchingNonApprovedRowFillsTheSlot(t *testing.T) {
	rows := []models.Membership{
		row(1, "Jane", models.MembershipDeclined),
		row(2, "Jane", models.MembershipPending),
	}
	d := Resolve(rows, "Jane")
	assert.Equal(t, DeniedOtherStatus, d.Outcome)
	assert.Equal(t, int64(1), d.Record.ID)
}

func TestResolve_NameMismatchReferencesFirstRow(t *testing.T) {
	rows := []models.Membership{
		row(1, "Janet", models.MembershipApproved),
		row(2, "Joan", models.MembershipPending),
	}
	d := Resolve(rows, "Jane Doe")
	require.Equal(t, DeniedNameMismatch, d.Outcome)
	assert.Nil(t, d.Record)
	assert.Contains(t, d.Message, "Janet")
}

func TestResolve_EmptyStoredFirstNameNeverMatches(t *testing.T) {
	rows := []models.Membership{row(1, "", models.MembershipApproved)}

	assert.Equal(t, DeniedNameMismatch, Resolve(rows, "Jane").Outcome)
	assert.Equal(t, DeniedNameMismatch, Resolve(rows, "").Outcome)
}

func TestResolve_StoredFirstNameIsTrimmed(t *testing.T) {
	rows := []models.Membership{row(1, " Jane ", models.MembershipApproved)}
	assert.Equal(t, Granted, Resolve(rows, "jane").Outcome)
}

func TestResolve_IsDeterministic(t *testing.T) {
	rows := []models.Membership{
		row(1, "Jane", models.MembershipPending),
		row(2, "Jane", models.MembershipDeclined),
	}
	first := Resolve(rows, "Jane")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Resolve(rows, "Jane"))
	}
}
