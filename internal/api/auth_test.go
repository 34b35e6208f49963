package api

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/eventhub/internal/core/session"
)

func TestCredentials_Validate(t *testing.T) {
	assert.NoError(t, Credentials{Email: "a@campus.edu", Password: "x"}.Validate())
	assert.NoError(t, Credentials{Email: "jdoe", Password: "x"}.Validate(), "format is left to the backend")

	err := Credentials{Email: "  "}.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 2)
	assert.Equal(t, "email", fieldErrs[0].Field)
	assert.Equal(t, "password", fieldErrs[1].Field)
}

func TestRegistration_Validate(t *testing.T) {
	tests := []struct {
		name      string
		reg       Registration
		wantField string
	}{
		{name: "valid", reg: Registration{Name: "Kim", Email: "k@campus.edu", Password: "secret1"}},
		{name: "valid with role", reg: Registration{Name: "Kim", Email: "k@campus.edu", Password: "secret1", Role: session.RoleLeader}},
		{name: "short password", reg: Registration{Name: "Kim", Email: "k@campus.edu", Password: "abc"}, wantField: "password"},
		{name: "missing name", reg: Registration{Email: "k@campus.edu", Password: "secret1"}, wantField: "name"},
		{name: "bad role", reg: Registration{Name: "Kim", Email: "k@campus.edu", Password: "secret1", Role: "owner"}, wantField: "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.wantField, fieldErrs[0].Field)
		})
	}
}
