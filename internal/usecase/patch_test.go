package usecase

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullable_UnmarshalJSON(t *testing.T) {
	id := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantValue *uuid.UUID
	}{
		{name: "absent", body: `{}`},
		{name: "null", body: `{"categoryId":null}`, wantSet: true},
		{name: "value", body: `{"categoryId":"` + id.String() + `"}`, wantSet: true, wantValue: &id},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var patch TransactionPatch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &patch))

			assert.Equal(t, tt.wantSet, patch.CategoryID.Set)
			assert.Equal(t, tt.wantValue, patch.CategoryID.Value)
			assert.False(t, patch.CustomerID.Set)
		})
	}
}

func TestNullable_Apply(t *testing.T) {
	id := uuid.New()
	stored := &id

	Nullable[uuid.UUID]{}.Apply(&stored)
	assert.Equal(t, &id, stored)

	other := uuid.New()
	NullableOf(other).Apply(&stored)
	require.NotNil(t, stored)
	assert.Equal(t, other, *stored)

	Null[uuid.UUID]().Apply(&stored)
	assert.Nil(t, stored)
}

func TestNullable_RejectsMalformedValue(t *testing.T) {
	var patch TransactionPatch
	assert.Error(t, json.Unmarshal([]byte(`{"customerId":"not-a-uuid"}`), &patch))
}
