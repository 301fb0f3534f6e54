package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/domain/model"
)

func p1() model.Product {
	return model.Product{ID: "p1", Name: "Coffee", Price: 100000, Description: "beans"}
}

func TestCart_Add_NewProductHasQuantityOne(t *testing.T) {
	c := model.Cart{UserID: "U1"}

	c.Add(p1())

	assert.Len(t, c.Items, 1)
	assert.Equal(t, "p1", c.Items[0].ProductID)
	assert.Equal(t, int64(1), c.Items[0].Quantity)
	assert.Equal(t, int64(100000), c.Total())
}

func TestCart_Add_SameProductIncrementsQuantity(t *testing.T) {
	c := model.Cart{UserID: "U1"}

	c.Add(p1())
	c.Add(p1())

	//明細は増えず数量だけ加算される
	assert.Len(t, c.Items, 1)
	assert.Equal(t, int64(2), c.Items[0].Quantity)
	assert.Equal(t, int64(200000), c.Total())
}

func TestCart_Remove_DeletesLine(t *testing.T) {
	c := model.Cart{UserID: "U1"}
	c.Add(p1())

	c.Remove("p1")

	assert.Empty(t, c.Items)
	assert.Equal(t, int64(0), c.Total())
}

func TestCart_Remove_UnknownProductIsNoop(t *testing.T) {
	c := model.Cart{UserID: "U1"}
	c.Add(p1())

	c.Remove("nope")

	assert.Len(t, c.Items, 1)
}

func TestCart_SetQuantity_ClampsBelowOne(t *testing.T) {
	c := model.Cart{UserID: "U1"}
	c.Add(p1())

	//0や負数は拒否ではなく1へ丸める
	c.SetQuantity("p1", 0)
	assert.Equal(t, int64(1), c.Items[0].Quantity)

	c.SetQuantity("p1", -5)
	assert.Equal(t, int64(1), c.Items[0].Quantity)
}

func TestCart_SetQuantity_UnknownProductIsNoop(t *testing.T) {
	c := model.Cart{UserID: "U1"}
	c.Add(p1())

	c.SetQuantity("nope", 10)

	assert.Len(t, c.Items, 1)
	assert.Equal(t, int64(1), c.Items[0].Quantity)
}

func TestCart_Clear_EmptiesCart(t *testing.T) {
	c := model.Cart{UserID: "U1"}
	c.Add(p1())
	c.Add(model.Product{ID: "p2", Price: 50})

	c.Clear()

	assert.Empty(t, c.Items)
	assert.Equal(t, int64(0), c.Total())
}

func TestCart_Total_SumOfPriceTimesQuantity(t *testing.T) {
	c := model.Cart{UserID: "U1"}
	c.Add(model.Product{ID: "a", Price: 300})
	c.Add(model.Product{ID: "b", Price: 1000})
	c.SetQuantity("b", 3)

	assert.Equal(t, int64(300+3*1000), c.Total())
}

func TestCart_CopyItems_IsStructuralCopy(t *testing.T) {
	c := model.Cart{UserID: "U1"}
	c.Add(p1())

	snapshot := c.CopyItems()
	c.SetQuantity("p1", 9)

	//後からカートを変えてもコピー側は変わらない
	assert.Equal(t, int64(1), snapshot[0].Quantity)
}
