package mongostore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Rasel9360/bistro-boss-server/internal/domain"
)

func stageJSON(t *testing.T, stage bson.D) string {
	t.Helper()
	out, err := bson.MarshalExtJSON(stage, false, false)
	require.NoError(t, err)
	return string(out)
}

func TestOrderStatsPipelineStages(t *testing.T) {
	p := orderStatsPipeline()
	var ops []string
	for _, stage := range p {
		require.Len(t, stage, 1, "one operator per stage")
		ops = append(ops, stage[0].Key)
	}
	assert.Equal(t, []string{"$unwind", "$lookup", "$unwind", "$group", "$project"}, ops)

	assert.JSONEq(t, `{"$unwind":"$menuItemIds"}`, stageJSON(t, p[0]))
	assert.JSONEq(t, `{"$lookup":{
		"from":"menu",
		"let":{"itemId":"$menuItemIds"},
		"pipeline":[{"$match":{"$expr":{"$eq":[{"$toString":"$_id"},{"$toString":"$$itemId"}]}}}],
		"as":"menuItems"
	}}`, stageJSON(t, p[1]))
	assert.JSONEq(t, `{"$unwind":"$menuItems"}`, stageJSON(t, p[2]))
	assert.JSONEq(t, `{"$group":{
		"_id":"$menuItems.category",
		"quantity":{"$sum":1},
		"revenue":{"$sum":"$menuItems.price"}
	}}`, stageJSON(t, p[3]))
	assert.JSONEq(t, `{"$project":{"_id":0,"category":"$_id","quantity":"$quantity","revenue":"$revenue"}}`, stageJSON(t, p[4]))
}

func TestRevenuePipelineSumsPrice(t *testing.T) {
	p := revenuePipeline()
	require.Len(t, p, 1)
	assert.JSONEq(t, `{"$group":{"_id":null,"totalRevenue":{"$sum":"$price"}}}`, stageJSON(t, p[0]))
}

func TestValidateIDs(t *testing.T) {
	repo := &CartRepository{}
	assert.NoError(t, repo.ValidateIDs([]string{"65a1b2c3d4e5f60718293a4b"}))
	assert.NoError(t, repo.ValidateIDs(nil))
	assert.ErrorIs(t, repo.ValidateIDs([]string{"65a1b2c3d4e5f60718293a4b", "not-an-objectid"}), domain.ErrInvalidID)
}
