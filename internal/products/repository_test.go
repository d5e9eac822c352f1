package products_test

import (
	"context"
	"testing"

	"github.com/phantuanthanh1582000/backend-ai-final/internal/products"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoRepository_FindByName(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sends case-insensitive regex, projection and limit", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "name", Value: "Red Shirt"},
				{Key: "category", Value: "apparel"},
				{Key: "price", Value: int32(15)},
				{Key: "image_url", Value: "https://cdn.example.com/red-shirt.jpg"},
			},
			bson.D{
				{Key: "name", Value: "SHIRT dress"},
				{Key: "category", Value: "apparel"},
				{Key: "price", Value: 42.5},
				{Key: "image_url", Value: "https://cdn.example.com/dress.jpg"},
			},
		))

		repo := products.NewMongoRepository(mt.Coll)
		found, err := repo.FindByName(context.Background(), "shirt", 10)
		require.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "find", started.CommandName)

		cmd := started.Command
		assert.Equal(mt, "shirt", cmd.Lookup("filter", "name", "$regex").StringValue())
		assert.Equal(mt, "i", cmd.Lookup("filter", "name", "$options").StringValue())
		assert.Equal(mt, int64(10), cmd.Lookup("limit").AsInt64())

		id, ok := cmd.Lookup("projection", "_id").AsInt64OK()
		require.True(mt, ok)
		assert.Equal(mt, int64(0), id)

		require.Len(mt, found, 2)
		assert.Equal(mt, products.Product{
			Name:     "Red Shirt",
			Category: "apparel",
			Price:    15,
			ImageURL: "https://cdn.example.com/red-shirt.jpg",
		}, found[0])
		assert.Equal(mt, 42.5, found[1].Price)
	})

	mt.Run("empty batch decodes to empty slice", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		found, err := products.NewMongoRepository(mt.Coll).FindByName(context.Background(), "unicorn", 10)

		require.NoError(mt, err)
		assert.NotNil(mt, found)
		assert.Empty(mt, found)
	})

	mt.Run("store error is returned", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    51091,
			Name:    "Location51091",
			Message: "Regular expression is invalid",
		}))

		_, err := products.NewMongoRepository(mt.Coll).FindByName(context.Background(), "(", 10)

		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "Regular expression is invalid")
	})
}
