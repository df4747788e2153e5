package model_test

import (
	"encoding/json"
	"testing"

	"github.com/prepqhq/prepq-cli/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDDecodesStringsAndIntegers(t *testing.T) {
	testCases := []struct {
		name       string
		payload    string
		expectedID model.ID
	}{
		{name: "string id", payload: `{"id": "abc-123"}`, expectedID: "abc-123"},
		{name: "integer id", payload: `{"id": 42}`, expectedID: "42"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var q model.Question
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &q))
			assert.Equal(t, tc.expectedID, q.ID)
		})
	}
}

func TestIDRejectsNonScalars(t *testing.T) {
	var q model.Question
	assert.Error(t, json.Unmarshal([]byte(`{"id": ["nope"]}`), &q))
}
