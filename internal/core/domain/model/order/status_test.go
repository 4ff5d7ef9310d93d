package order_test

import (
	"fmt"
	"testing"

	"candydelivery/internal/core/domain/model/order"
	"candydelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(order.Unknown))
	assert.Equal(t, 1, int(order.Created))
	assert.Equal(t, 2, int(order.Assigned))
	assert.Equal(t, 3, int(order.Completed))
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Created, order.Assigned, order.Completed} {
			t.Run(status.String(), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(4), order.Status(100)} {
			t.Run(fmt.Sprintf("value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Created", order.Created.String())
	assert.Equal(t, "Assigned", order.Assigned.String())
	assert.Equal(t, "Completed", order.Completed.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		from       order.Status
		transition func(order.Status) (order.Status, error)
		want       order.Status
		wantErr    string
	}{
		{name: "assign created", from: order.Created, transition: order.Status.Assign, want: order.Assigned},
		{name: "assign assigned", from: order.Assigned, transition: order.Status.Assign,
			wantErr: "Assigned is not a valid status to assign"},
		{name: "assign completed", from: order.Completed, transition: order.Status.Assign,
			wantErr: "Completed is not a valid status to assign"},
		{name: "unassign assigned", from: order.Assigned, transition: order.Status.Unassign, want: order.Created},
		{name: "unassign created", from: order.Created, transition: order.Status.Unassign,
			wantErr: "Created is not a valid status to unassign"},
		{name: "unassign completed", from: order.Completed, transition: order.Status.Unassign,
			wantErr: "Completed is not a valid status to unassign"},
		{name: "complete assigned", from: order.Assigned, transition: order.Status.Complete, want: order.Completed},
		{name: "complete created", from: order.Created, transition: order.Status.Complete,
			wantErr: "Created is not a valid status to complete"},
		{name: "complete completed", from: order.Completed, transition: order.Status.Complete,
			wantErr: "Completed is not a valid status to complete"},
		{name: "complete unknown", from: order.Unknown, transition: order.Status.Complete,
			wantErr: "Unknown is not a valid status to complete"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.transition(tt.from)

			if tt.wantErr != "" {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Equal(t, order.Status(0), got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_ValidateCanHaveAssignment(t *testing.T) {
	require.NoError(t, order.Created.ValidateCanHaveAssignment(false))
	require.NoError(t, order.Assigned.ValidateCanHaveAssignment(true))
	require.NoError(t, order.Completed.ValidateCanHaveAssignment(true))

	require.ErrorContains(t, order.Created.ValidateCanHaveAssignment(true), "Created is not a valid status to have a courier")
	require.ErrorContains(t, order.Assigned.ValidateCanHaveAssignment(false), "Assigned is not a valid status to have no courier")
	require.ErrorContains(t, order.Completed.ValidateCanHaveAssignment(false), "Completed is not a valid status to have no courier")
}
