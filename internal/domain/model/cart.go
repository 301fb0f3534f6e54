package model

import "time"

// 1ユーザーにつきカートは1つ（docId = UserID）。
// 変更のたびにdoc全体を上書き保存する。
type Cart struct {
	UserID    string         `firestore:"-" json:"user_id"`
	Items     []CartLineItem `firestore:"items" json:"items"`
	UpdatedAt time.Time      `firestore:"updatedAt" json:"updated_at"`
}

// 同一商品は数量加算、無ければ数量1で追加。
func (c *Cart) Add(p Product) {
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}

	c.Items = append(c.Items, CartLineItem{
		ProductID:   p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Quantity:    1,
	})
}

// 明細削除。無ければ何もしない。
func (c *Cart) Remove(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// 数量変更。1未満は1に丸める。無ければ何もしない。
func (c *Cart) SetQuantity(productID string, quantity int64) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// 空にする（docは削除しない）。
func (c *Cart) Clear() {
	c.Items = nil
}

// Σ(価格 × 数量)。
func (c *Cart) Total() int64 {
	var total int64 = 0
	for _, it := range c.Items {
		total += it.Price * it.Quantity
	}
	return total
}

// 明細の構造コピーを返す。
// 注文確定後にカートを触っても注文側に影響しないようにするため。
func (c *Cart) CopyItems() []CartLineItem {
	items := make([]CartLineItem, len(c.Items))
	copy(items, c.Items)
	return items
}
