package conversation

import (
	"context"
	"testing"

	"tripgenius/models"
	"tripgenius/services/intelligence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMalformedFieldAnswerCarriesValidationError(t *testing.T) {
	intel := intelligence.NewLocalService()
	tool := NewFlightTool(newFakeGateway(), intel, nil)
	sess := &models.Session{SessionID: "s1", Queue: []models.ToolID{models.ToolFlight}}
	ctx := context.Background()

	out := tool.Step(ctx, sess, "")
	require.Equal(t, OutcomeNeedsInput, out.Kind)
	assert.Equal(t, models.FieldOrigin, sess.Tool.AwaitingField)

	out = tool.Step(ctx, sess, "the moon base")
	require.Equal(t, OutcomeNeedsInput, out.Kind)
	assert.Contains(t, out.Message, "didn't catch that")

	var verr *ValidationError
	require.ErrorAs(t, out.Err, &verr)
	assert.Equal(t, models.FieldOrigin, verr.Field)

	// The field stays pending; a valid answer then advances.
	assert.Equal(t, models.FieldOrigin, sess.Tool.AwaitingField)
	out = tool.Step(ctx, sess, "New York")
	require.Equal(t, OutcomeNeedsInput, out.Kind)
	assert.NoError(t, out.Err)
	assert.Equal(t, "JFK", sess.Params.Origin)
	assert.Equal(t, models.FieldDestination, sess.Tool.AwaitingField)
}
