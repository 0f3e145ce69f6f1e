package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_Unmarshal(t *testing.T) {
	var u ContactUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"personId": 3, "name": "Ana", "email": null}`), &u))

	assert.Equal(t, int64(3), u.PersonID)

	name, ok := u.Name.Get()
	assert.True(t, ok)
	assert.Equal(t, "Ana", name)

	assert.True(t, u.Email.Set)
	assert.True(t, u.Email.Null)
	_, ok = u.Email.Get()
	assert.False(t, ok)

	assert.False(t, u.Cpf.Set)
	assert.True(t, u.Cpf.IsZero())
}

func TestOptional_MarshalOmitZero(t *testing.T) {
	type body struct {
		Name  Optional[string] `json:"name,omitzero"`
		Email Optional[string] `json:"email,omitzero"`
		Cpf   Optional[string] `json:"cpf,omitzero"`
	}

	out, err := json.Marshal(body{Name: Some("Ana"), Email: Null[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ana","email":null}`, string(out))
}

func TestOptional_InvalidValue(t *testing.T) {
	var d DealUpdate
	err := json.Unmarshal([]byte(`{"dealId": 1, "value": "lots"}`), &d)
	assert.Error(t, err)
}

func TestErrors(t *testing.T) {
	assert.Equal(t, "dealId is required", (&ValidationError{Field: "dealId", Reason: "is required"}).Error())
	assert.Equal(t, "user not found: Carlos", (&NotFoundError{Resource: "user", Key: "Carlos"}).Error())
	assert.Equal(t, "deals not found", (&NotFoundError{Resource: "deals"}).Error())
	assert.Equal(t, "agendor returned 422: bad", (&RemoteError{Status: 422, Body: "bad"}).Error())
}
